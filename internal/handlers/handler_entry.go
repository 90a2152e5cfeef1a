package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/devanshg03/personal_journal_app/internal/apperrors"
	portssvc "github.com/devanshg03/personal_journal_app/internal/core/ports/services"
	"github.com/devanshg03/personal_journal_app/internal/dto"
	"github.com/devanshg03/personal_journal_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to journal entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{
		entryService: es,
	}
}

// RegisterEntryRoutes registers all entry-related routes.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.GET("", h.listEntries)
		entries.POST("", h.createEntry)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// parseEntryID reads the :id path parameter. The entry namespace is integer
// ids, so anything non-numeric is simply an entry that cannot exist.
func parseEntryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Success: false, Error: "Entry not found"})
		return 0, false
	}
	return id, true
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves all journal entries ordered by most recent first
// @Tags entries
// @Produce json
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.entryService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "Failed to retrieve entries"})
		return
	}

	logger.Info("Entries listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates a new journal entry with the given title and content
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryEnvelope
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Storage failure"
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: "Title and content are required"})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Entry validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: err.Error()})
		} else {
			logger.Error("Failed to create entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "Failed to create entry"})
		}
		return
	}

	logger.Info("Entry created successfully", slog.Int64("entry_id", entry.ID))
	c.JSON(http.StatusCreated, dto.EntryEnvelope{Success: true, Entry: dto.ToEntryResponse(entry)})
}

// getEntry godoc
// @Summary Get a journal entry by ID
// @Description Retrieves a single journal entry
// @Tags entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.EntryEnvelope
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries/{id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry not found", slog.Int64("entry_id", entryID))
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Success: false, Error: "Entry not found"})
		} else {
			logger.Error("Failed to get entry from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "Failed to retrieve entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.EntryEnvelope{Success: true, Entry: dto.ToEntryResponse(entry)})
}

// updateEntry godoc
// @Summary Update a journal entry
// @Description Replaces title and content of an existing entry and refreshes its updated_at timestamp
// @Tags entries
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "New entry details"
// @Success 200 {object} dto.EntryEnvelope
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries/{id} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: "Title and content are required"})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), entryID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Entry validation failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Entry not found for update", slog.Int64("entry_id", entryID))
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Success: false, Error: "Entry not found"})
		default:
			logger.Error("Failed to update entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "Failed to update entry"})
		}
		return
	}

	logger.Info("Entry updated successfully", slog.Int64("entry_id", entry.ID))
	c.JSON(http.StatusOK, dto.EntryEnvelope{Success: true, Entry: dto.ToEntryResponse(entry)})
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Removes an entry permanently. Repeating the delete yields a 404, not an error.
// @Tags entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.DeleteEntryResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries/{id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entryID, ok := parseEntryID(c)
	if !ok {
		return
	}

	err := h.entryService.DeleteEntry(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry not found for deletion", slog.Int64("entry_id", entryID))
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Success: false, Error: "Entry not found"})
		} else {
			logger.Error("Failed to delete entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Error: "Failed to delete entry"})
		}
		return
	}

	logger.Info("Entry deleted successfully", slog.Int64("entry_id", entryID))
	c.JSON(http.StatusOK, dto.DeleteEntryResponse{Success: true, Message: "Entry deleted successfully"})
}
