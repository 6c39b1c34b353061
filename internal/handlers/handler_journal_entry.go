package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/parenting_journal_app/internal/core/ports/services"
	"github.com/SscSPs/parenting_journal_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// journalEntryHandler handles HTTP requests for the journal entries of a family.
type journalEntryHandler struct {
	entryService portssvc.JournalEntrySvcFacade
}

// newJournalEntryHandler creates a new journalEntryHandler.
func newJournalEntryHandler(es portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{entryService: es}
}

// registerJournalEntryRoutes registers entry routes on a /families/:family_id group.
func registerJournalEntryRoutes(family *gin.RouterGroup, entryService portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(entryService)

	entries := family.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entry_id", h.getEntry)
		entries.DELETE("/:entry_id", h.deleteEntry)
	}
}

type entryURI struct {
	FamilyID string `uri:"family_id" binding:"required,uuid"`
	EntryID  string `uri:"entry_id" binding:"required,uuid"`
}

func bindEntryURI(c *gin.Context) (entryURI, bool) {
	var uri entryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Family ID and entry ID in path must be UUIDs"})
		return uri, false
	}
	return uri, true
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Records a new entry in the family journal. Requires at least the CAREGIVER role.
// @Tags entries
// @Accept json
// @Produce json
// @Param family_id path string true "Family ID"
// @Param entry body dto.CreateJournalEntryRequest true "Entry details"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /families/{family_id}/entries [post]
func (h *journalEntryHandler) createEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	familyID, ok := bindFamilyID(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), familyID, userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create journal entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists the entries of a family, newest first, one page at a time.
// @Tags entries
// @Produce json
// @Param family_id path string true "Family ID"
// @Param limit query int false "Page size (1-100)" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /families/{family_id}/entries [get]
func (h *journalEntryHandler) listEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	familyID, ok := bindFamilyID(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, nextToken, err := h.entryService.ListEntries(c.Request.Context(), familyID, userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list journal entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries, nextToken))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags entries
// @Produce json
// @Param family_id path string true "Family ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /families/{family_id}/entries/{entry_id} [get]
func (h *journalEntryHandler) getEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	uri, ok := bindEntryURI(c)
	if !ok {
		return
	}

	entry, err := h.entryService.GetEntry(c.Request.Context(), uri.FamilyID, uri.EntryID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve journal entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Authors may delete their own entries. Deleting someone else's entry requires PARENT.
// @Tags entries
// @Param family_id path string true "Family ID"
// @Param entry_id path string true "Entry ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /families/{family_id}/entries/{entry_id} [delete]
func (h *journalEntryHandler) deleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	uri, ok := bindEntryURI(c)
	if !ok {
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), uri.FamilyID, uri.EntryID, userID); err != nil {
		respondWithError(c, err, "Failed to delete journal entry")
		return
	}

	c.Status(http.StatusNoContent)
}
