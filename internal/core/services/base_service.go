package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/parenting_journal_app/internal/apperrors"
	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/parenting_journal_app/internal/core/ports/services"
	"github.com/SscSPs/parenting_journal_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	FamilyAuthorizer portssvc.FamilyAuthorizerSvc
}

// GetLogger gets the request-scoped logger from context
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks that a user holds at least the required role in a family.
// Without an authorizer every request is denied.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, familyID string, requiredRole domain.FamilyRole) (*domain.FamilyMember, error) {
	if s.FamilyAuthorizer == nil {
		s.LogError(ctx, apperrors.ErrForbidden, "No family authorizer configured",
			slog.String("family_id", familyID))
		return nil, apperrors.ErrForbidden
	}
	return s.FamilyAuthorizer.AuthorizeUserAction(ctx, userID, familyID, requiredRole)
}
