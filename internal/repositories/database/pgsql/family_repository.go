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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFamilyRepository struct {
	BaseRepository
}

// newPgxFamilyRepository creates a new repository for family data.
func newPgxFamilyRepository(pool *pgxpool.Pool) portsrepo.FamilyRepositoryFacade {
	return &PgxFamilyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxFamilyRepository implements portsrepo.FamilyRepositoryFacade
var _ portsrepo.FamilyRepositoryFacade = (*PgxFamilyRepository)(nil)

const selectFamilyQuery = `
SELECT
	f.family_id, f.name, f.invite_code,
	f.created_at, f.created_by, f.last_updated_at, f.last_updated_by
FROM families f
`

const selectFamilyMemberQuery = `
SELECT fm.user_id, u.name AS user_name, fm.family_id, fm.role, fm.joined_at
FROM family_members fm
JOIN users u ON u.user_id = fm.user_id
`

func (r *PgxFamilyRepository) getFamilies(ctx context.Context, filterQuery string, args ...any) ([]domain.Family, error) {
	rows, err := r.Pool.Query(ctx, selectFamilyQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query families", err)
	}
	modelFamilies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Family])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect family rows", err)
	}

	families := make([]domain.Family, len(modelFamilies))
	for i, m := range modelFamilies {
		families[i] = m.ToDomain()
	}
	return families, nil
}

func (r *PgxFamilyRepository) getOneFamily(ctx context.Context, filterQuery string, args ...any) (*domain.Family, error) {
	families, err := r.getFamilies(ctx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(families) == 0 {
		return nil, apperrors.NewNotFoundError("family not found")
	}
	return &families[0], nil
}

func (r *PgxFamilyRepository) FindFamilyByID(ctx context.Context, familyID string) (*domain.Family, error) {
	return r.getOneFamily(ctx, "WHERE f.family_id = $1", familyID)
}

func (r *PgxFamilyRepository) FindFamilyByInviteCode(ctx context.Context, inviteCode string) (*domain.Family, error) {
	return r.getOneFamily(ctx, "WHERE f.invite_code = $1", inviteCode)
}

func (r *PgxFamilyRepository) ListFamiliesByUserID(ctx context.Context, userID string) ([]domain.Family, error) {
	return r.getFamilies(ctx, `
		JOIN family_members fm ON fm.family_id = f.family_id
		WHERE fm.user_id = $1
		ORDER BY f.name, f.family_id`, userID)
}

func (r *PgxFamilyRepository) SaveFamily(ctx context.Context, family domain.Family, owner domain.FamilyMember) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO families (family_id, name, invite_code, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			family.FamilyID,
			family.Name,
			family.InviteCode,
			family.CreatedAt,
			family.CreatedBy,
			family.LastUpdatedAt,
			family.LastUpdatedBy,
		)
		if err != nil {
			if pgErrorCode(err) == pgUniqueViolation {
				return apperrors.NewConflictError("family " + family.FamilyID + " or its invite code already exists")
			}
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to save family", err)
		}
		return insertMember(ctx, tx, owner)
	})
}

func (r *PgxFamilyRepository) AddFamilyMember(ctx context.Context, member domain.FamilyMember) error {
	return insertMember(ctx, r.Pool, member)
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func insertMember(ctx context.Context, db execer, member domain.FamilyMember) error {
	_, err := db.Exec(ctx, `
		INSERT INTO family_members (family_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4);`,
		member.FamilyID,
		member.UserID,
		string(member.Role),
		member.JoinedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewConflictError("user " + member.UserID + " is already a member of family " + member.FamilyID)
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("family or user not found")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to add user "+member.UserID+" to family "+member.FamilyID, err)
	}
	return nil
}

func (r *PgxFamilyRepository) FindFamilyMember(ctx context.Context, userID, familyID string) (*domain.FamilyMember, error) {
	rows, err := r.Pool.Query(ctx, selectFamilyMemberQuery+"WHERE fm.user_id = $1 AND fm.family_id = $2", userID, familyID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query family membership", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.FamilyMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("membership not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find user "+userID+" in family "+familyID, err)
	}
	member := m.ToDomain()
	return &member, nil
}

func (r *PgxFamilyRepository) ListFamilyMembers(ctx context.Context, familyID string) ([]domain.FamilyMember, error) {
	rows, err := r.Pool.Query(ctx, selectFamilyMemberQuery+"WHERE fm.family_id = $1 ORDER BY fm.joined_at, fm.user_id", familyID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query family members", err)
	}
	modelMembers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.FamilyMember])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect family member rows", err)
	}

	members := make([]domain.FamilyMember, len(modelMembers))
	for i, m := range modelMembers {
		members[i] = m.ToDomain()
	}
	return members, nil
}
