// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"causes/internal/delivery/http/middleware"
	"causes/internal/delivery/http/response"
	"causes/internal/domain/entity"
	"causes/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CauseHandler holds dependencies for cause-related handlers.
type CauseHandler struct {
	uc     usecase.CauseUsecase
	logger *slog.Logger
}

// NewCauseHandler is the constructor for CauseHandler, injected by Fx.
func NewCauseHandler(uc usecase.CauseUsecase, logger *slog.Logger) *CauseHandler {
	return &CauseHandler{
		uc:     uc,
		logger: logger,
	}
}

// createCauseRequest is the wire shape for direct cause publication. The
// detail document is kept raw until the category is known.
type createCauseRequest struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Category        entity.Category  `json:"category"`
	CauseType       entity.CauseType `json:"cause_type"`
	Location        string           `json:"location"`
	Priority        entity.Priority  `json:"priority"`
	ContactEmail    string           `json:"contact_email"`
	ContactPhone    string           `json:"contact_phone"`
	Tags            []string         `json:"tags"`
	Images          []string         `json:"images"`
	CategoryDetails json.RawMessage  `json:"category_details"`
}

// CreateCause publishes a new cause directly, without an authoring session.
func (h *CauseHandler) CreateCause(c echo.Context) error {
	creator, ok := middleware.CurrentCreator(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	var req createCauseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cause payload")
	}

	input := &usecase.CreateCauseInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		CauseType:    req.CauseType,
		Location:     req.Location,
		Priority:     req.Priority,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Tags:         req.Tags,
		Images:       req.Images,
	}

	if len(req.CategoryDetails) > 0 {
		detail, err := entity.DecodeDetail(req.Category, req.CategoryDetails)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category detail document")
		}
		input.Details = detail
	}

	cause, err := h.uc.CreateCause(c.Request().Context(), creator, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, cause)
}

// GetCause returns a cause together with its rendered detail sections.
// The Accept-Language header or locale query parameter picks the viewer locale.
func (h *CauseHandler) GetCause(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cause ID")
	}

	locale := c.QueryParam("locale")
	if locale == "" {
		locale = c.Request().Header.Get("Accept-Language")
	}

	presentation, err := h.uc.GetCausePresentation(c.Request().Context(), id, locale)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, presentation)
}

// listCausesResponse is a page of causes plus paging metadata.
type listCausesResponse struct {
	Causes  []*entity.Cause `json:"causes"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}

// ListCauses returns a filtered page of causes.
func (h *CauseHandler) ListCauses(c echo.Context) error {
	input := &usecase.ListCausesInput{
		Category:  entity.Category(c.QueryParam("category")),
		CauseType: entity.CauseType(c.QueryParam("cause_type")),
		Priority:  entity.Priority(c.QueryParam("priority")),
	}

	if creatorID := c.QueryParam("creator_id"); creatorID != "" {
		id, err := uuid.Parse(creatorID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid creator ID")
		}
		input.CreatorID = id
	}
	if err := echo.QueryParamsBinder(c).
		Int("page", &input.Page).
		Int("per_page", &input.PerPage).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid paging parameters")
	}

	list, err := h.uc.ListCauses(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listCausesResponse{
		Causes:  list.Causes,
		Total:   list.Total,
		Page:    max(input.Page, 1),
		PerPage: len(list.Causes),
	})
}

// updateCauseRequest is the wire shape for partial cause updates. Category
// names the detail variant when a replacement detail document is sent; the
// cause's stored category itself never changes.
type updateCauseRequest struct {
	Title           *string          `json:"title"`
	Description     *string          `json:"description"`
	Location        *string          `json:"location"`
	Priority        *entity.Priority `json:"priority"`
	ContactEmail    *string          `json:"contact_email"`
	ContactPhone    *string          `json:"contact_phone"`
	Tags            []string         `json:"tags"`
	Images          []string         `json:"images"`
	Category        entity.Category  `json:"category"`
	CategoryDetails json.RawMessage  `json:"category_details"`
}

// UpdateCause applies a partial update to a cause owned by the caller.
func (h *CauseHandler) UpdateCause(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Authentication required")
	}

	causeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cause ID")
	}

	var req updateCauseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update payload")
	}

	input := &usecase.UpdateCauseInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Priority:     req.Priority,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Tags:         req.Tags,
		Images:       req.Images,
	}

	if len(req.CategoryDetails) > 0 {
		detail, err := entity.DecodeDetail(req.Category, req.CategoryDetails)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category detail document")
		}
		input.Details = detail
	}

	cause, err := h.uc.UpdateCause(c.Request().Context(), userID, causeID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cause)
}

// LikeCause records a like on a cause.
func (h *CauseHandler) LikeCause(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cause ID")
	}

	if err := h.uc.LikeCause(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "liked"})
}

// ShareQR returns a PNG QR code linking to the cause's public page.
func (h *CauseHandler) ShareQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cause ID")
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
