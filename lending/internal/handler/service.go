package handler

import (
	"context"

	"github.com/mzhasan/lending-service/lending/internal/model"
	"github.com/mzhasan/lending-service/lending/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, req model.BookCreate) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.BookUpdate) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	ListMembers(ctx context.Context) ([]model.Member, error)
	GetMember(ctx context.Context, id int64) (model.Member, error)
	CreateMember(ctx context.Context, req model.MemberCreate) (model.Member, error)
	UpdateMember(ctx context.Context, id int64, req model.MemberUpdate) (model.Member, error)
	DeleteMember(ctx context.Context, id int64) error

	ListBorrowings(ctx context.Context) ([]model.BorrowingRecord, error)
	GetBorrowing(ctx context.Context, id int64) (model.BorrowingRecord, error)
	CreateBorrowing(ctx context.Context, req model.BorrowingRecordCreate) (model.BorrowingRecord, error)
	UpdateBorrowing(ctx context.Context, id int64, req model.BorrowingRecordUpdate) (model.BorrowingRecord, error)
	DeleteBorrowing(ctx context.Context, id int64) error
	ReturnBorrowing(ctx context.Context, id int64) (model.BorrowingRecord, error)
}

var _ LendingService = (*service.Service)(nil)
