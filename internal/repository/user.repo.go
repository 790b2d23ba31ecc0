package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anurag07-07/Resculink/internal/domain"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id, name, email, password_hash, role, lat, lng, phone, is_available,
	associated_ngo, is_verified, verification_status,
	organization_name, organization_email, verified_by, verified_at,
	created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u        domain.User
		lat, lng *float64
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &lat, &lng,
		&u.Phone, &u.IsAvailable, &u.AssociatedNGO, &u.IsVerified,
		&u.VerificationStatus, &u.OrganizationName, &u.OrganizationEmail,
		&u.VerifiedBy, &u.VerifiedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		u.Location = &domain.GeoPoint{Lat: *lat, Lng: *lng}
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var lat, lng *float64
	if user.Location != nil {
		lat, lng = &user.Location.Lat, &user.Location.Lng
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO users (
			id, name, email, password_hash, role, lat, lng, phone,
			is_available, associated_ngo, is_verified, verification_status,
			organization_name, organization_email, created_at, updated_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,
			$9,$10,$11,$12,
			$13,$14,NOW(),NOW()
		)
		RETURNING `+userColumns,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		lat, lng, user.Phone,
		user.IsAvailable, user.AssociatedNGO, user.IsVerified, user.VerificationStatus,
		user.OrganizationName, user.OrganizationEmail,
	)

	saved, err := scanUser(row)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return nil, xerrors.ErrEmailAlreadyInUse
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// ListPendingNGOs returns every NGO account still awaiting admin review.
func (r *UserRepository) ListPendingNGOs(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role='ngo' AND verification_status='pending'
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ngos []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		ngos = append(ngos, *u)
	}
	return ngos, rows.Err()
}

// ListVerifiedNGOs returns the public summaries for the registration
// dropdown.
func (r *UserRepository) ListVerifiedNGOs(ctx context.Context) ([]domain.NGOSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, COALESCE(organization_name, ''), name
		FROM users
		WHERE role='ngo' AND is_verified=TRUE
		ORDER BY organization_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ngos []domain.NGOSummary
	for rows.Next() {
		var n domain.NGOSummary
		if err := rows.Scan(&n.ID, &n.OrganizationName, &n.Name); err != nil {
			return nil, err
		}
		ngos = append(ngos, n)
	}
	return ngos, rows.Err()
}

// UpdateVerification records an admin decision on an NGO account.
func (r *UserRepository) UpdateVerification(ctx context.Context, id string, status domain.VerificationStatus, verifiedBy string, verifiedAt time.Time) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET verification_status=$1,
		    is_verified=($1='approved'),
		    verified_by=$2,
		    verified_at=$3,
		    updated_at=NOW()
		WHERE id=$4
		RETURNING `+userColumns,
		status, verifiedBy, verifiedAt, id,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
