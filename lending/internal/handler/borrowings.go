package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mzhasan/lending-service/lending/internal/errs"
	"github.com/mzhasan/lending-service/lending/internal/model"
)

func (h *Handler) ListBorrowings(c echo.Context) error {
	records, err := h.lendingSvc.ListBorrowings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]model.BorrowingRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, r.Response())
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBorrowing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	record, err := h.lendingSvc.GetBorrowing(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, record.Response())
}

func (h *Handler) CreateBorrowing(c echo.Context) error {
	var req model.BorrowingRecordCreate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	record, err := h.lendingSvc.CreateBorrowing(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookNotFound),
			errors.Is(err, errs.ErrMemberNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrBookUnavailable):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, record.Response())
}

func (h *Handler) UpdateBorrowing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.BorrowingRecordUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	record, err := h.lendingSvc.UpdateBorrowing(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRecordNotFound),
			errors.Is(err, errs.ErrBookNotFound),
			errors.Is(err, errs.ErrMemberNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrBookUnavailable):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, record.Response())
}

func (h *Handler) DeleteBorrowing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.lendingSvc.DeleteBorrowing(c.Request().Context(), id); err != nil {
		if errors.Is(err, errs.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ReturnBorrowing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	record, err := h.lendingSvc.ReturnBorrowing(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRecordNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrAlreadyReturned):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, record.Response())
}
