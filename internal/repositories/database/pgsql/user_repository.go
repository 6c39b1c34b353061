package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/parenting_journal_app/internal/apperrors"
	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/parenting_journal_app/internal/core/ports/repositories"
	"github.com/SscSPs/parenting_journal_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const selectUserQuery = `
	SELECT user_id, username, password_hash, name,
	       created_at, created_by, last_updated_at, last_updated_by, deleted_at
	FROM users
`

func (r *PgxUserRepository) findOne(ctx context.Context, filter string, arg any) (*domain.User, error) {
	rows, err := r.Pool.Query(ctx, selectUserQuery+filter, arg)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query user", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan user row", err)
	}
	u := m.ToDomain()
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "WHERE user_id = $1 AND deleted_at IS NULL", userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "WHERE LOWER(username) = LOWER($1) AND deleted_at IS NULL", username)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, username, password_hash, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.PasswordHash,
		user.Name,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewConflictError("username " + user.Username + " is already taken")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save user", err)
	}
	return nil
}
