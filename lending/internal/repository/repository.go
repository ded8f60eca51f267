package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mzhasan/lending-service/lending/internal/errs"
	"github.com/mzhasan/lending-service/lending/internal/model"
)

type Repository interface {
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

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	bookTableName      = `book`
	memberTableName    = `member`
	borrowingTableName = `borrowing_record`

	// availability is derived, never stored: a book is lendable while it has
	// no outstanding borrowing record.
	isAvailableExpr = `not exists (
	select 1 from borrowing_record r
	where r.book_id = book.id and r.return_date is null) as is_available`

	borrowingColumns = `id, borrow_date, return_date, book_id, member_id`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select("id", "title", "author", "isbn", isAvailableExpr).
		From(bookTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	query, args, err := qb.Select("id", "title", "author", "isbn", isAvailableExpr).
		From(bookTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) CreateBook(ctx context.Context, req model.BookCreate) (model.Book, error) {
	query, args, err := qb.Insert(bookTableName).
		Columns("title", "author", "isbn").
		Values(req.Title, req.Author, req.Isbn).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errs.ErrIsbnTaken
		}
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, err
	}
	return model.Book{
		ID:          id,
		Title:       req.Title,
		Author:      req.Author,
		Isbn:        req.Isbn,
		IsAvailable: true,
	}, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, req model.BookUpdate) (model.Book, error) {
	set := map[string]interface{}{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Author != nil {
		set["author"] = *req.Author
	}
	if req.Isbn != nil {
		set["isbn"] = *req.Isbn
	}
	if len(set) == 0 {
		return r.GetBook(ctx, id)
	}
	query, args, err := qb.Update(bookTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, title, author, isbn, " + isAvailableExpr).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		if isUniqueViolation(err) {
			return model.Book{}, errs.ErrIsbnTaken
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(bookTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrBookNotFound
	}
	return nil
}

func (r *repository) ListMembers(ctx context.Context) ([]model.Member, error) {
	query, args, err := qb.Select("id", "name", "email").
		From(memberTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var members []model.Member
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) GetMember(ctx context.Context, id int64) (model.Member, error) {
	query, args, err := qb.Select("id", "name", "email").
		From(memberTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}
	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrMemberNotFound
		}
		return model.Member{}, err
	}
	return member, nil
}

func (r *repository) CreateMember(ctx context.Context, req model.MemberCreate) (model.Member, error) {
	query, args, err := qb.Insert(memberTableName).
		Columns("name", "email").
		Values(req.Name, req.Email).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Member{}, err
	}
	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Member{}, errs.ErrEmailTaken
		}
		r.log.Error("CreateMember", zap.String("q", query), zap.Any("args", args))
		return model.Member{}, err
	}
	return model.Member{ID: id, Name: req.Name, Email: req.Email}, nil
}

func (r *repository) UpdateMember(ctx context.Context, id int64, req model.MemberUpdate) (model.Member, error) {
	set := map[string]interface{}{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if len(set) == 0 {
		return r.GetMember(ctx, id)
	}
	query, args, err := qb.Update(memberTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, name, email").
		ToSql()
	if err != nil {
		return model.Member{}, err
	}
	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrMemberNotFound
		}
		if isUniqueViolation(err) {
			return model.Member{}, errs.ErrEmailTaken
		}
		return model.Member{}, err
	}
	return member, nil
}

func (r *repository) DeleteMember(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(memberTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrMemberNotFound
	}
	return nil
}

func (r *repository) ListBorrowings(ctx context.Context) ([]model.BorrowingRecord, error) {
	query, args, err := qb.Select("id", "borrow_date", "return_date", "book_id", "member_id").
		From(borrowingTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var records []model.BorrowingRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) GetBorrowing(ctx context.Context, id int64) (model.BorrowingRecord, error) {
	query, args, err := qb.Select("id", "borrow_date", "return_date", "book_id", "member_id").
		From(borrowingTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	var record model.BorrowingRecord
	if err := r.db.GetContext(ctx, &record, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowingRecord{}, errs.ErrRecordNotFound
		}
		return model.BorrowingRecord{}, err
	}
	return record, nil
}

// CreateBorrowing runs the existence and availability checks and the insert in
// one transaction. The book row is locked so two concurrent borrow requests
// for the same book cannot both pass the availability check.
func (r *repository) CreateBorrowing(ctx context.Context, req model.BorrowingRecordCreate) (model.BorrowingRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var bookID int64
	if err := tx.GetContext(ctx, &bookID,
		`select id from book where id = $1 for update`, req.BookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowingRecord{}, errs.ErrBookNotFound
		}
		return model.BorrowingRecord{}, err
	}

	var memberID int64
	if err := tx.GetContext(ctx, &memberID,
		`select id from member where id = $1`, req.MemberID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowingRecord{}, errs.ErrMemberNotFound
		}
		return model.BorrowingRecord{}, err
	}

	var outstanding bool
	if err := tx.GetContext(ctx, &outstanding,
		`select exists (select 1 from borrowing_record where book_id = $1 and return_date is null)`,
		req.BookID); err != nil {
		return model.BorrowingRecord{}, err
	}
	if outstanding {
		return model.BorrowingRecord{}, errs.ErrBookUnavailable
	}

	query, args, err := qb.Insert(borrowingTableName).
		Columns("borrow_date", "book_id", "member_id").
		Values(req.BorrowDate, req.BookID, req.MemberID).
		Suffix("returning " + borrowingColumns).
		ToSql()
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	var record model.BorrowingRecord
	if err := tx.GetContext(ctx, &record, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.BorrowingRecord{}, errs.ErrBookUnavailable
		}
		r.log.Error("CreateBorrowing", zap.String("q", query), zap.Any("args", args))
		return model.BorrowingRecord{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.BorrowingRecord{}, err
	}
	return record, nil
}

func (r *repository) UpdateBorrowing(ctx context.Context, id int64, req model.BorrowingRecordUpdate) (model.BorrowingRecord, error) {
	set := map[string]interface{}{}
	if req.BorrowDate != nil {
		set["borrow_date"] = *req.BorrowDate
	}
	if req.ReturnDate.Set {
		if req.ReturnDate.Date != nil {
			set["return_date"] = *req.ReturnDate.Date
		} else {
			set["return_date"] = nil
		}
	}
	if req.BookID != nil {
		set["book_id"] = *req.BookID
	}
	if req.MemberID != nil {
		set["member_id"] = *req.MemberID
	}
	if len(set) == 0 {
		return r.GetBorrowing(ctx, id)
	}
	query, args, err := qb.Update(borrowingTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + borrowingColumns).
		ToSql()
	if err != nil {
		return model.BorrowingRecord{}, err
	}
	var record model.BorrowingRecord
	if err := r.db.GetContext(ctx, &record, query, args...); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return model.BorrowingRecord{}, errs.ErrRecordNotFound
		case isUniqueViolation(err):
			// clearing return_date would make a second outstanding loan
			return model.BorrowingRecord{}, errs.ErrBookUnavailable
		case constraintName(err) == "borrowing_record_book_id_fkey":
			return model.BorrowingRecord{}, errs.ErrBookNotFound
		case constraintName(err) == "borrowing_record_member_id_fkey":
			return model.BorrowingRecord{}, errs.ErrMemberNotFound
		}
		return model.BorrowingRecord{}, err
	}
	return record, nil
}

func (r *repository) DeleteBorrowing(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(borrowingTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 { //nolint:errcheck
		return errs.ErrRecordNotFound
	}
	return nil
}

// ReturnBorrowing flips an outstanding record to returned in a single update;
// a missed update is then told apart as absent vs already returned.
func (r *repository) ReturnBorrowing(ctx context.Context, id int64) (model.BorrowingRecord, error) {
	q := `update borrowing_record
	set return_date = current_date
	where id = $1 and return_date is null
	returning ` + borrowingColumns

	var record model.BorrowingRecord
	if err := r.db.GetContext(ctx, &record, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := r.GetBorrowing(ctx, id); getErr != nil {
				return model.BorrowingRecord{}, getErr
			}
			return model.BorrowingRecord{}, errs.ErrAlreadyReturned
		}
		return model.BorrowingRecord{}, err
	}
	return record, nil
}
