package models

import (
	"time"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
)

// User is a row of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Name         string `db:"name"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

// ToDomain converts the row into a domain.User.
func (m User) ToDomain() domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		AuditFields:  domain.AuditFields(m.AuditFields),
		DeletedAt:    m.DeletedAt,
	}
}
