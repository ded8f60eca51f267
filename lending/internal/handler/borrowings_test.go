package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/mzhasan/lending-service/lending/internal/errs"
	service_mocks "github.com/mzhasan/lending-service/lending/internal/handler/mocks"
	"github.com/mzhasan/lending-service/lending/internal/model"
)

func TestHandler_CreateBorrowing(t *testing.T) {
	t.Parallel()
	borrowDate := model.NewDate(2026, time.February, 13)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"borrow_date":"2026-02-13","book_id":1,"member_id":2}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					CreateBorrowing(context.Background(), model.BorrowingRecordCreate{
						BorrowDate: borrowDate,
						BookID:     1,
						MemberID:   2,
					}).
					Return(model.BorrowingRecord{
						ID:         7,
						BorrowDate: borrowDate,
						ReturnDate: nil,
						BookID:     1,
						MemberID:   2,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"borrow_id":7,"borrow_date":"2026-02-13","return_date":null,"book_id":1,"member_id":2}`,
			},
		},
		{
			name: "err. book not found",
			body: `{"borrow_date":"2026-02-13","book_id":99,"member_id":2}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					CreateBorrowing(context.Background(), model.BorrowingRecordCreate{
						BorrowDate: borrowDate,
						BookID:     99,
						MemberID:   2,
					}).
					Return(model.BorrowingRecord{}, errs.ErrBookNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Book not found"}`,
			},
		},
		{
			name: "err. member not found",
			body: `{"borrow_date":"2026-02-13","book_id":1,"member_id":99}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					CreateBorrowing(context.Background(), model.BorrowingRecordCreate{
						BorrowDate: borrowDate,
						BookID:     1,
						MemberID:   99,
					}).
					Return(model.BorrowingRecord{}, errs.ErrMemberNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Member not found"}`,
			},
		},
		{
			name: "err. book unavailable",
			body: `{"borrow_date":"2026-02-13","book_id":1,"member_id":2}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					CreateBorrowing(context.Background(), model.BorrowingRecordCreate{
						BorrowDate: borrowDate,
						BookID:     1,
						MemberID:   2,
					}).
					Return(model.BorrowingRecord{}, errs.ErrBookUnavailable)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Book is not available for borrowing"}`,
			},
		},
		{
			name:         "err. book_id required",
			body:         `{"borrow_date":"2026-02-13","member_id":2}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'BorrowingRecordCreate.BookID' Error:Field validation for 'BookID' failed on the 'required' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e, h := newTestRouter(t)
			e.POST("/borrowings", h.CreateBorrowing)

			r := httptest.NewRequest(http.MethodPost, "/borrowings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateBorrowing(t *testing.T) {
	t.Parallel()
	borrowDate := model.NewDate(2026, time.February, 13)
	returnDate := model.NewDate(2026, time.February, 20)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		id           string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. set return date",
			id:   "7",
			body: `{"return_date":"2026-02-20"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					UpdateBorrowing(context.Background(), int64(7), model.BorrowingRecordUpdate{
						ReturnDate: model.NullableDate{Date: &returnDate, Set: true},
					}).
					Return(model.BorrowingRecord{
						ID:         7,
						BorrowDate: borrowDate,
						ReturnDate: &returnDate,
						BookID:     1,
						MemberID:   2,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"borrow_id":7,"borrow_date":"2026-02-13","return_date":"2026-02-20","book_id":1,"member_id":2}`,
			},
		},
		{
			name: "ok. explicit null clears return date",
			id:   "7",
			body: `{"return_date":null}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					UpdateBorrowing(context.Background(), int64(7), model.BorrowingRecordUpdate{
						ReturnDate: model.NullableDate{Date: nil, Set: true},
					}).
					Return(model.BorrowingRecord{
						ID:         7,
						BorrowDate: borrowDate,
						ReturnDate: nil,
						BookID:     1,
						MemberID:   2,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"borrow_id":7,"borrow_date":"2026-02-13","return_date":null,"book_id":1,"member_id":2}`,
			},
		},
		{
			name: "ok. absent field untouched",
			id:   "7",
			body: `{"member_id":3}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					UpdateBorrowing(context.Background(), int64(7), model.BorrowingRecordUpdate{
						MemberID: int64Ptr(3),
					}).
					Return(model.BorrowingRecord{
						ID:         7,
						BorrowDate: borrowDate,
						ReturnDate: nil,
						BookID:     1,
						MemberID:   3,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"borrow_id":7,"borrow_date":"2026-02-13","return_date":null,"book_id":1,"member_id":3}`,
			},
		},
		{
			name: "err. not found",
			id:   "42",
			body: `{"return_date":"2026-02-20"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					UpdateBorrowing(context.Background(), int64(42), model.BorrowingRecordUpdate{
						ReturnDate: model.NullableDate{Date: &returnDate, Set: true},
					}).
					Return(model.BorrowingRecord{}, errs.ErrRecordNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Borrowing record not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e, h := newTestRouter(t)
			e.PUT("/borrowings/:id", h.UpdateBorrowing)

			r := httptest.NewRequest(http.MethodPut, "/borrowings/"+tt.id, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReturnBorrowing(t *testing.T) {
	t.Parallel()
	borrowDate := model.NewDate(2026, time.February, 13)
	returnDate := model.NewDate(2026, time.February, 20)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "7",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					ReturnBorrowing(context.Background(), int64(7)).
					Return(model.BorrowingRecord{
						ID:         7,
						BorrowDate: borrowDate,
						ReturnDate: &returnDate,
						BookID:     1,
						MemberID:   2,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"borrow_id":7,"borrow_date":"2026-02-13","return_date":"2026-02-20","book_id":1,"member_id":2}`,
			},
		},
		{
			name: "err. already returned",
			id:   "7",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					ReturnBorrowing(context.Background(), int64(7)).
					Return(model.BorrowingRecord{}, errs.ErrAlreadyReturned)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Book has already been returned"}`,
			},
		},
		{
			name: "err. not found",
			id:   "42",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					ReturnBorrowing(context.Background(), int64(42)).
					Return(model.BorrowingRecord{}, errs.ErrRecordNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Borrowing record not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e, h := newTestRouter(t)
			e.POST("/borrowings/:id/return", h.ReturnBorrowing)

			r := httptest.NewRequest(http.MethodPost, "/borrowings/"+tt.id+"/return", http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
