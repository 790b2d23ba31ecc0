package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type NewUserParams struct {
	Name              string
	Email             string
	PasswordHash      string
	Role              Role
	Location          *GeoPoint
	Phone             *string
	AssociatedNGO     *string
	OrganizationName  *string
	OrganizationEmail *string
}

// NewUser builds an account with the verification defaults for its role.
// Admins are approved and verified from the start, NGOs enter the review
// queue, everyone else is approved without review. The entity itself stays
// free of role-conditional logic; this factory is the only place defaults
// are computed.
func NewUser(p NewUserParams) *User {
	now := time.Now()

	u := &User{
		ID:           ulid.Make().String(),
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Role:         p.Role,
		Location:     p.Location,
		Phone:        p.Phone,
		IsAvailable:  p.Role == RoleVolunteer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch p.Role {
	case RoleAdmin:
		u.IsVerified = true
		u.VerificationStatus = VerificationApproved
	case RoleNGO:
		u.IsVerified = false
		u.VerificationStatus = VerificationPending
		u.OrganizationName = p.OrganizationName
		u.OrganizationEmail = p.OrganizationEmail
	case RoleVolunteer:
		u.IsVerified = true
		u.VerificationStatus = VerificationApproved
		u.AssociatedNGO = p.AssociatedNGO
	default:
		u.IsVerified = true
		u.VerificationStatus = VerificationApproved
	}

	return u
}
