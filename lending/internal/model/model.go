package model

import (
	"database/sql/driver"
	"time"

	"github.com/pkg/errors"
)

// Date is a calendar date. It marshals as "2006-01-02" and maps to the
// postgres date type.
type Date struct {
	time.Time `json:",inline"`
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	y, m, d := time.Now().UTC().Date()
	return NewDate(y, m, d)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.New("date must be a string in YYYY-MM-DD format")
	}
	t, err := time.Parse(time.DateOnly, s[1:len(s)-1])
	if err != nil {
		return errors.Wrap(err, "parse date")
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return errors.Errorf("cannot scan %T into Date", src)
	}
}

// NullableDate distinguishes a field that is absent from one that is
// explicitly null. UnmarshalJSON only runs when the key is present.
type NullableDate struct {
	Date *Date
	Set  bool
}

func (n *NullableDate) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Date = nil
		return nil
	}
	var d Date
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	n.Date = &d
	return nil
}

type Book struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Author      string `db:"author"`
	Isbn        string `db:"isbn"`
	IsAvailable bool   `db:"is_available"`
}

func (b Book) Response() BookResponse {
	return BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		IsAvailable: b.IsAvailable,
	}
}

type Member struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

func (m Member) Response() MemberResponse {
	return MemberResponse{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
	}
}

// BorrowingRecord is outstanding while ReturnDate is nil.
type BorrowingRecord struct {
	ID         int64 `db:"id"`
	BorrowDate Date  `db:"borrow_date"`
	ReturnDate *Date `db:"return_date"`
	BookID     int64 `db:"book_id"`
	MemberID   int64 `db:"member_id"`
}

func (r BorrowingRecord) Response() BorrowingRecordResponse {
	return BorrowingRecordResponse{
		BorrowID:   r.ID,
		BorrowDate: r.BorrowDate,
		ReturnDate: r.ReturnDate,
		BookID:     r.BookID,
		MemberID:   r.MemberID,
	}
}

type BookCreate struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Isbn   string `json:"isbn" validate:"required"`
}

type BookUpdate struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Isbn   *string `json:"isbn"`
}

type BookResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	IsAvailable bool   `json:"is_available"`
}

type MemberCreate struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type MemberUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type MemberResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BorrowingRecordCreate struct {
	BorrowDate Date  `json:"borrow_date" validate:"required"`
	BookID     int64 `json:"book_id" validate:"required"`
	MemberID   int64 `json:"member_id" validate:"required"`
}

// BorrowingRecordUpdate is a raw partial update. It can force or revert the
// returned state without the return endpoint's checks; the storage-level
// outstanding-loan index still applies.
type BorrowingRecordUpdate struct {
	BorrowDate *Date        `json:"borrow_date"`
	ReturnDate NullableDate `json:"return_date"`
	BookID     *int64       `json:"book_id"`
	MemberID   *int64       `json:"member_id"`
}

type BorrowingRecordResponse struct {
	BorrowID   int64 `json:"borrow_id"`
	BorrowDate Date  `json:"borrow_date"`
	ReturnDate *Date `json:"return_date"`
	BookID     int64 `json:"book_id"`
	MemberID   int64 `json:"member_id"`
}
