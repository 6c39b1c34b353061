package services

import (
	"context"
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed JWT for the user and reports when it expires.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
