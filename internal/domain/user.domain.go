// user.go under internal/domain
package domain

import "time"

type Role string

const (
	RoleVictim    Role = "victim"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
	RoleNGO       Role = "ngo"
)

func (r Role) Valid() bool {
	switch r {
	case RoleVictim, RoleVolunteer, RoleAdmin, RoleNGO:
		return true
	}
	return false
}

// VerificationStatus gates what an NGO account may do. Only meaningful
// for RoleNGO; every other role is created approved.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type User struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	PasswordHash       string             `json:"-"`
	Role               Role               `json:"role"`
	Location           *GeoPoint          `json:"location,omitempty"`
	Phone              *string            `json:"phone,omitempty"`
	IsAvailable        bool               `json:"is_available"` // volunteers only
	AssociatedNGO      *string            `json:"associated_ngo,omitempty"`
	IsVerified         bool               `json:"is_verified"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	OrganizationName   *string            `json:"organization_name,omitempty"`
	OrganizationEmail  *string            `json:"organization_email,omitempty"`
	VerifiedBy         *string            `json:"verified_by,omitempty"`
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// Profile is the public projection of a user returned by auth endpoints.
type Profile struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Role               Role               `json:"role"`
	Phone              *string            `json:"phone,omitempty"`
	Location           *GeoPoint          `json:"location,omitempty"`
	IsVerified         bool               `json:"is_verified"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	OrganizationName   *string            `json:"organization_name,omitempty"`
}

func (u *User) Profile() *Profile {
	return &Profile{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		Phone:              u.Phone,
		Location:           u.Location,
		IsVerified:         u.IsVerified,
		VerificationStatus: u.VerificationStatus,
		OrganizationName:   u.OrganizationName,
	}
}

// NGOSummary is the public listing entry for verified NGOs.
type NGOSummary struct {
	ID               string `json:"id"`
	OrganizationName string `json:"organization_name"`
	Name             string `json:"name"`
}
