package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/parenting_journal_app/internal/apperrors"
	"github.com/SscSPs/parenting_journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps a service error onto its HTTP status. Server-side failures are logged and
// answered with fallbackMsg so internals never leak to the client.
func respondWithError(c *gin.Context, err error, fallbackMsg string) {
	_ = c.Error(err)
	status := apperrors.StatusCode(err)

	var msg string
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		msg = "Unauthorized"
	case errors.Is(err, apperrors.ErrMalformedInput):
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(fallbackMsg, slog.String("error", err.Error()))
		msg = "Stored journal data could not be processed"
	case status >= http.StatusInternalServerError:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(fallbackMsg, slog.String("error", err.Error()))
		msg = fallbackMsg
	default:
		msg = errorMessage(err)
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

// errorMessage prefers the AppError message over the wrapped chain.
func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// currentUserID fetches the authenticated user or aborts with 401.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return userID, ok
}

// familyURI binds the family_id path parameter shared by every family-scoped route.
type familyURI struct {
	FamilyID string `uri:"family_id" binding:"required,uuid"`
}

// bindFamilyID reads and validates family_id, answering 400 when it is not a UUID.
func bindFamilyID(c *gin.Context) (string, bool) {
	var uri familyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Family ID in path must be a UUID"})
		return "", false
	}
	return uri.FamilyID, true
}
