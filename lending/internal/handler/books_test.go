package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mzhasan/lending-service/lending/internal/errs"
	"github.com/mzhasan/lending-service/lending/internal/handler"
	service_mocks "github.com/mzhasan/lending-service/lending/internal/handler/mocks"
	"github.com/mzhasan/lending-service/lending/internal/model"
	"github.com/mzhasan/lending-service/pkg/validate"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func newTestRouter(t *testing.T) (*service_mocks.MockLendingService, *echo.Echo, *handler.Handler) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockLendingService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return svc, e, h
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
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
			id:   "1",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					GetBook(context.Background(), int64(1)).
					Return(model.Book{
						ID:          1,
						Title:       "Dune",
						Author:      "Frank Herbert",
						Isbn:        "ISBN001",
						IsAvailable: true,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"title":"Dune","author":"Frank Herbert","is_available":true}`,
			},
		},
		{
			name: "err. not found",
			id:   "42",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					GetBook(context.Background(), int64(42)).
					Return(model.Book{}, errs.ErrBookNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Book not found"}`,
			},
		},
		{
			name:         "err. invalid id",
			id:           "abc",
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
		},
		{
			name: "err. internal",
			id:   "1",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					GetBook(context.Background(), int64(1)).
					Return(model.Book{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e, h := newTestRouter(t)
			e.GET("/books/:id", h.GetBook)

			r := httptest.NewRequest(http.MethodGet, "/books/"+tt.id, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	svc, e, h := newTestRouter(t)
	e.GET("/books", h.ListBooks)

	svc.EXPECT().
		ListBooks(context.Background()).
		Return([]model.Book{
			{ID: 1, Title: "Dune", Author: "Frank Herbert", Isbn: "ISBN001", IsAvailable: false},
			{ID: 2, Title: "Hyperion", Author: "Dan Simmons", Isbn: "ISBN002", IsAvailable: true},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/books", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"id":1,"title":"Dune","author":"Frank Herbert","is_available":false},{"id":2,"title":"Hyperion","author":"Dan Simmons","is_available":true}]`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
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
			body: `{"title":"Dune","author":"Frank Herbert","isbn":"ISBN001"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					CreateBook(context.Background(), model.BookCreate{
						Title:  "Dune",
						Author: "Frank Herbert",
						Isbn:   "ISBN001",
					}).
					Return(model.Book{
						ID:          1,
						Title:       "Dune",
						Author:      "Frank Herbert",
						Isbn:        "ISBN001",
						IsAvailable: true,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"title":"Dune","author":"Frank Herbert","is_available":true}`,
			},
		},
		{
			name: "err. duplicate isbn",
			body: `{"title":"Dune","author":"Frank Herbert","isbn":"ISBN001"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					CreateBook(context.Background(), gomock.Any()).
					Return(model.Book{}, errs.ErrIsbnTaken)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"isbn already in use"}`,
			},
		},
		{
			name:         "err. title required",
			body:         `{"author":"Frank Herbert","isbn":"ISBN001"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'BookCreate.Title' Error:Field validation for 'Title' failed on the 'required' tag"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e, h := newTestRouter(t)
			e.POST("/books", h.CreateBook)

			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateBook(t *testing.T) {
	t.Parallel()
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
			name: "ok. partial author only",
			id:   "1",
			body: `{"author":"D"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					UpdateBook(context.Background(), int64(1), model.BookUpdate{
						Author: strPtr("D"),
					}).
					Return(model.Book{
						ID:          1,
						Title:       "A",
						Author:      "D",
						Isbn:        "C",
						IsAvailable: true,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"title":"A","author":"D","is_available":true}`,
			},
		},
		{
			name: "err. not found",
			id:   "42",
			body: `{"title":"A"}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					UpdateBook(context.Background(), int64(42), model.BookUpdate{
						Title: strPtr("A"),
					}).
					Return(model.Book{}, errs.ErrBookNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Book not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e, h := newTestRouter(t)
			e.PUT("/books/:id", h.UpdateBook)

			r := httptest.NewRequest(http.MethodPut, "/books/"+tt.id, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()
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
			id:   "1",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					DeleteBook(context.Background(), int64(1)).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusNoContent,
				expectedBody: ``,
			},
		},
		{
			name: "err. not found",
			id:   "42",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					DeleteBook(context.Background(), int64(42)).
					Return(errs.ErrBookNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Book not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, e, h := newTestRouter(t)
			e.DELETE("/books/:id", h.DeleteBook)

			r := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/books/%s", tt.id), http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
