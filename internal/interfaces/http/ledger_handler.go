package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mvr-infra/materials-api/internal/application/dto"
	"github.com/mvr-infra/materials-api/internal/application/ledger"
	"github.com/mvr-infra/materials-api/internal/application/report"
)

// LedgerHandler serves ledger event entry, correction and listing.
type LedgerHandler struct {
	uc *ledger.LedgerUseCase
}

// NewLedgerHandler builds the handler.
func NewLedgerHandler(uc *ledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RecordEvent godoc
// @Summary      Record an opening/purchase/issue/return event
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category  path  string  true  "category"
// @Param        body      body  dto.RecordEventRequest  true  "kind, item_name, quantity, unit, refs"
// @Success      201  {object}  dto.EventResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/{category}/events [post]
func (h *LedgerHandler) RecordEvent(c *fiber.Ctx) error {
	var in dto.RecordEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	ev, err := h.uc.RecordEvent(c.Context(), c.Params("category"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ev)
}

// EditEvent godoc
// @Summary      Replace an event's fields (category and kind are immutable)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "event id"
// @Param        body  body  dto.EditEventRequest  true  "item_name, quantity, unit, refs"
// @Success      200  {object}  dto.EventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/events/{id} [put]
func (h *LedgerHandler) EditEvent(c *fiber.Ctx) error {
	var in dto.EditEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	ev, err := h.uc.EditEvent(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ev)
}

// DeleteEvent godoc
// @Summary      Delete an event permanently
// @Description  The "are you sure" confirmation lives in the client; there is
// no undo here. A correction after delete is a fresh compensating entry.
// @Tags         ledger
// @Security     Bearer
// @Param        id  path  string  true  "event id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/events/{id} [delete]
func (h *LedgerHandler) DeleteEvent(c *fiber.Ctx) error {
	if err := h.uc.DeleteEvent(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEvents godoc
// @Summary      List events with filters and pagination
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        category          path   string  true   "category"
// @Param        item_name         query  string  false  "exact item name"
// @Param        date_from         query  string  false  "RFC 3339"
// @Param        date_to           query  string  false  "RFC 3339"
// @Param        counterparty_ref  query  string  false  "vendor/employee ref"
// @Param        page              query  int     false  "1-indexed page"
// @Param        page_size         query  int     false  "rows per page"
// @Success      200  {object}  dto.EventListResponse
// @Router       /api/ledger/{category}/events [get]
func (h *LedgerHandler) ListEvents(c *fiber.Ctx) error {
	var in dto.ListEventsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	in.DefaultPage()

	events, err := h.uc.ListEvents(c.Params("category"), in)
	if err != nil {
		return respondError(c, err)
	}
	responses, err := h.uc.ToEventResponses(events)
	if err != nil {
		return respondError(c, err)
	}
	pg := report.Paginate(responses, in.Page, in.PageSize)
	return c.JSON(dto.EventListResponse{
		Events: pg.Rows,
		Page: dto.PageResponse{
			Page:       in.Page,
			PageSize:   in.PageSize,
			TotalPages: pg.TotalPages,
			TotalCount: pg.TotalCount,
		},
	})
}
