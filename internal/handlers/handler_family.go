package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/parenting_journal_app/internal/core/ports/services"
	"github.com/SscSPs/parenting_journal_app/internal/dto"
	"github.com/SscSPs/parenting_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// familyHandler handles HTTP requests related to families and their members.
type familyHandler struct {
	familyService portssvc.FamilySvcFacade
}

// newFamilyHandler creates a new familyHandler.
func newFamilyHandler(fs portssvc.FamilySvcFacade) *familyHandler {
	return &familyHandler{familyService: fs}
}

// registerFamilyRoutes registers routes related to families.
func registerFamilyRoutes(rg *gin.RouterGroup, familyService portssvc.FamilySvcFacade) {
	h := newFamilyHandler(familyService)

	families := rg.Group("/families")
	{
		families.POST("", h.createFamily)
		families.GET("", h.listUserFamilies)
		families.POST("/join", h.joinFamily)
		families.GET("/:family_id/members", h.listFamilyMembers)
	}
}

// createFamily godoc
// @Summary Create a family
// @Description Creates a new family. The creator becomes its first PARENT and receives the invite code.
// @Tags families
// @Accept json
// @Produce json
// @Param family body dto.CreateFamilyRequest true "Family details"
// @Success 201 {object} dto.FamilyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /families [post]
func (h *familyHandler) createFamily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	family, err := h.familyService.CreateFamily(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "Failed to create family")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Family created", "family_id", family.FamilyID)
	c.JSON(http.StatusCreated, dto.ToFamilyResponse(family))
}

// listUserFamilies godoc
// @Summary List families
// @Description Lists the families the authenticated user belongs to.
// @Tags families
// @Produce json
// @Success 200 {object} dto.ListFamiliesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /families [get]
func (h *familyHandler) listUserFamilies(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	families, err := h.familyService.ListUserFamilies(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list families")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFamiliesResponse(families))
}

// joinFamily godoc
// @Summary Join a family
// @Description Joins the family owning the invite code as a CAREGIVER.
// @Tags families
// @Accept json
// @Produce json
// @Param join body dto.JoinFamilyRequest true "Invite code"
// @Success 200 {object} dto.FamilyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown invite code"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /families/join [post]
func (h *familyHandler) joinFamily(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.JoinFamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	family, err := h.familyService.JoinFamily(c.Request.Context(), req.InviteCode, userID)
	if err != nil {
		respondWithError(c, err, "Failed to join family")
		return
	}

	c.JSON(http.StatusOK, dto.ToFamilyResponse(family))
}

// listFamilyMembers godoc
// @Summary List family members
// @Description Lists the members of a family. The caller must belong to it.
// @Tags families
// @Produce json
// @Param family_id path string true "Family ID"
// @Success 200 {object} dto.ListFamilyMembersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /families/{family_id}/members [get]
func (h *familyHandler) listFamilyMembers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	familyID, ok := bindFamilyID(c)
	if !ok {
		return
	}

	members, err := h.familyService.ListFamilyMembers(c.Request.Context(), familyID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to list family members")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFamilyMembersResponse(members))
}
