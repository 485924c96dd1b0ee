package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/journal_backend/internal/apperrors"
	portssvc "github.com/SscSPs/journal_backend/internal/core/ports/services"
	"github.com/SscSPs/journal_backend/internal/dto"
	"github.com/SscSPs/journal_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidFormat   = "Invalid request format"
	msgCreateRequired  = "Text and date are required"
	msgUpdateRequired  = "Text or date is required for update"
	msgEntryNotFound   = "Entry not found"
	msgCreateFailed    = "Failed to save journal entry"
	msgUpdateFailed    = "Failed to update journal entry"
	msgDeleteFailed    = "Failed to delete journal entry"
	msgDeleteSucceeded = "Entry deleted successfully"
)

// entryHandler handles HTTP requests related to journal entries.
type entryHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(js portssvc.JournalSvcFacade) *entryHandler {
	return &entryHandler{
		journalService: js,
	}
}

// RegisterEntryRoutes registers all journal entry routes under rg.
func RegisterEntryRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newEntryHandler(journalService)

	entries := rg.Group("/entries")
	{
		entries.GET("", h.listEntries)
		entries.POST("", h.createEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// bindBody decodes the JSON body into req. An empty body leaves req at its zero value.
func bindBody(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// listEntries godoc
// @Summary List journal entries
// @Description Returns every journal entry, most recently created first
// @Tags entries
// @Produce  json
// @Success 200 {array} dto.EntryResponse
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries := h.journalService.ListEntries(c.Request.Context())

	logger.Info("Entries listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListEntryResponse(entries))
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Adds a new entry at the head of the journal
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry text and date"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Text and date are required"
// @Failure 500 {object} dto.ErrorResponse "Failed to save journal entry"
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntryRequest
	if err := bindBody(c, &req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidFormat})
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgCreateRequired})
		} else {
			logger.Error("Failed to create entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgCreateFailed})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a journal entry
// @Description Overwrites the supplied fields of an entry and stamps updatedAt
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateEntryRequest true "Fields to change"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} dto.ErrorResponse "Text or date is required for update"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update journal entry"
// @Router /entries/{id} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	entryID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	var req dto.UpdateEntryRequest
	if err := bindBody(c, &req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidFormat})
		return
	}

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), entryID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgUpdateRequired})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Entry not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": msgEntryNotFound})
		default:
			logger.Error("Failed to update entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgUpdateFailed})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Removes a single entry, keeping the order of the others
// @Tags entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete journal entry"
// @Router /entries/{id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	entryID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	if err := h.journalService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": msgEntryNotFound})
		} else {
			logger.Error("Failed to delete entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgDeleteFailed})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msgDeleteSucceeded})
}
