package errs

import (
	"errors"
)

var (
	ErrBookNotFound    = errors.New("Book not found")
	ErrMemberNotFound  = errors.New("Member not found")
	ErrRecordNotFound  = errors.New("Borrowing record not found")
	ErrBookUnavailable = errors.New("Book is not available for borrowing")
	ErrAlreadyReturned = errors.New("Book has already been returned")
	ErrIsbnTaken       = errors.New("isbn already in use")
	ErrEmailTaken      = errors.New("email already in use")
)
