package handler

import (
	"context"
	"log/slog"
	"net/http"

	"causes/internal/authoring"
	"causes/internal/delivery/http/middleware"
	"causes/internal/delivery/http/response"
	"causes/internal/domain/entity"
	"causes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthoringHandler exposes the step-by-step cause authoring workflow.
type AuthoringHandler struct {
	uc     usecase.AuthoringUsecase
	logger *slog.Logger
}

// NewAuthoringHandler is the constructor for AuthoringHandler, injected by Fx.
func NewAuthoringHandler(uc usecase.AuthoringUsecase, logger *slog.Logger) *AuthoringHandler {
	return &AuthoringHandler{
		uc:     uc,
		logger: logger,
	}
}

// StartSession opens a new authoring session for the caller.
func (h *AuthoringHandler) StartSession(c echo.Context) error {
	creator, ok := middleware.CurrentCreator(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	view, err := h.uc.StartSession(c.Request().Context(), creator)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// GetSession returns the current state of an authoring session.
func (h *AuthoringHandler) GetSession(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	view, err := h.uc.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SelectCategory picks or switches the session's category.
func (h *AuthoringHandler) SelectCategory(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	var req struct {
		Category entity.Category `json:"category"`
	}
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category payload")
	}

	view, err := h.uc.SelectCategory(c.Request().Context(), sessionID, req.Category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SelectDirection records whether the cause offers or requests resources.
func (h *AuthoringHandler) SelectDirection(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	var req struct {
		CauseType entity.CauseType `json:"cause_type"`
	}
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid direction payload")
	}

	view, err := h.uc.SelectDirection(c.Request().Context(), sessionID, req.CauseType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// fieldValuesRequest carries a partial set of field edits.
type fieldValuesRequest struct {
	Values map[string]any `json:"values"`
}

// SetCommonFields applies edits to the shared basic info fields.
func (h *AuthoringHandler) SetCommonFields(c echo.Context) error {
	return h.setFields(c, h.uc.SetCommonFields)
}

// SetDetailFields applies edits to the category detail fields.
func (h *AuthoringHandler) SetDetailFields(c echo.Context) error {
	return h.setFields(c, h.uc.SetDetailFields)
}

func (h *AuthoringHandler) setFields(
	c echo.Context,
	apply func(ctx context.Context, sessionID uuid.UUID, values map[string]any) (*usecase.SessionView, error),
) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	var req fieldValuesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid field values payload")
	}

	view, err := apply(c.Request().Context(), sessionID, req.Values)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// EditSubRecords applies one add/update/remove operation to a repeatable field.
func (h *AuthoringHandler) EditSubRecords(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	var edit usecase.SubRecordEdit
	if err := c.Bind(&edit); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sub-record payload")
	}

	view, err := h.uc.EditSubRecords(c.Request().Context(), sessionID, &edit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SetImages replaces the session's ordered image references.
func (h *AuthoringHandler) SetImages(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	var req struct {
		Images []string `json:"images"`
	}
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid images payload")
	}

	view, err := h.uc.SetImages(c.Request().Context(), sessionID, req.Images)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Advance moves the session from basic info to category details.
func (h *AuthoringHandler) Advance(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	view, err := h.uc.Advance(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Back navigates the session to an earlier step, keeping entered values.
func (h *AuthoringHandler) Back(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	var req struct {
		Target authoring.State `json:"target"`
	}
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid target payload")
	}

	view, err := h.uc.Back(c.Request().Context(), sessionID, req.Target)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Submit validates and persists the session's cause.
func (h *AuthoringHandler) Submit(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	view, err := h.uc.Submit(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// CloseSession disposes an authoring session.
func (h *AuthoringHandler) CloseSession(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	if err := h.uc.CloseSession(c.Request().Context(), sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "closed"})
}
