package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mzhasan/lending-service/lending/internal/errs"
	"github.com/mzhasan/lending-service/lending/internal/model"
)

func (h *Handler) ListMembers(c echo.Context) error {
	members, err := h.lendingSvc.ListMembers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]model.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, m.Response())
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMember(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	member, err := h.lendingSvc.GetMember(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrMemberNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, member.Response())
}

func (h *Handler) CreateMember(c echo.Context) error {
	var req model.MemberCreate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	member, err := h.lendingSvc.CreateMember(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, member.Response())
}

func (h *Handler) UpdateMember(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.MemberUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	member, err := h.lendingSvc.UpdateMember(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMemberNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrEmailTaken):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, member.Response())
}

func (h *Handler) DeleteMember(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.lendingSvc.DeleteMember(c.Request().Context(), id); err != nil {
		if errors.Is(err, errs.ErrMemberNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
