package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mzhasan/lending-service/lending/internal/model"
	lendingRepo "github.com/mzhasan/lending-service/lending/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo lendingRepo.Repository
}

func NewService(repo lendingRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, req model.BookCreate) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, req model.BookUpdate) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) ListMembers(ctx context.Context) ([]model.Member, error) {
	return s.repo.ListMembers(ctx)
}

func (s *Service) GetMember(ctx context.Context, id int64) (model.Member, error) {
	return s.repo.GetMember(ctx, id)
}

func (s *Service) CreateMember(ctx context.Context, req model.MemberCreate) (model.Member, error) {
	return s.repo.CreateMember(ctx, req)
}

func (s *Service) UpdateMember(ctx context.Context, id int64, req model.MemberUpdate) (model.Member, error) {
	return s.repo.UpdateMember(ctx, id, req)
}

func (s *Service) DeleteMember(ctx context.Context, id int64) error {
	return s.repo.DeleteMember(ctx, id)
}

func (s *Service) ListBorrowings(ctx context.Context) ([]model.BorrowingRecord, error) {
	return s.repo.ListBorrowings(ctx)
}

func (s *Service) GetBorrowing(ctx context.Context, id int64) (model.BorrowingRecord, error) {
	return s.repo.GetBorrowing(ctx, id)
}

func (s *Service) CreateBorrowing(ctx context.Context, req model.BorrowingRecordCreate) (model.BorrowingRecord, error) {
	return s.repo.CreateBorrowing(ctx, req)
}

func (s *Service) UpdateBorrowing(ctx context.Context, id int64, req model.BorrowingRecordUpdate) (model.BorrowingRecord, error) {
	return s.repo.UpdateBorrowing(ctx, id, req)
}

func (s *Service) DeleteBorrowing(ctx context.Context, id int64) error {
	return s.repo.DeleteBorrowing(ctx, id)
}

func (s *Service) ReturnBorrowing(ctx context.Context, id int64) (model.BorrowingRecord, error) {
	return s.repo.ReturnBorrowing(ctx, id)
}
