package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Anurag07-07/Resculink/internal/domain"
	"github.com/Anurag07-07/Resculink/internal/ws"
	"github.com/Anurag07-07/Resculink/pkg/utils"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

// UserStore is the persistence surface the usecases need for accounts.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListPendingNGOs(ctx context.Context) ([]domain.User, error)
	ListVerifiedNGOs(ctx context.Context) ([]domain.NGOSummary, error)
	UpdateVerification(ctx context.Context, id string, status domain.VerificationStatus, verifiedBy string, verifiedAt time.Time) (*domain.User, error)
}

// EventPublisher pushes lifecycle events onto the realtime channel.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, audience string, data interface{}) error
}

const (
	msgNGOAwaitingVerification = "NGO account created! Awaiting admin verification. You will have limited permissions until approved."
	msgNGOPendingLogin         = "Your NGO account is pending verification. Limited permissions."
)

type AuthUsecase struct {
	users           UserStore
	events          EventPublisher
	superAdminEmail string
}

func NewAuthUsecase(users UserStore, events EventPublisher, superAdminEmail string) *AuthUsecase {
	return &AuthUsecase{
		users:           users,
		events:          events,
		superAdminEmail: superAdminEmail,
	}
}

type RegisterInput struct {
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Password          string           `json:"password"`
	Role              domain.Role      `json:"role"`
	Location          *domain.GeoPoint `json:"location,omitempty"`
	Phone             *string          `json:"phone,omitempty"`
	AssociatedNGO     *string          `json:"associated_ngo,omitempty"`
	OrganizationName  *string          `json:"organization_name,omitempty"`
	OrganizationEmail *string          `json:"organization_email,omitempty"`
}

// Register creates an account. The designated super-admin email always
// gets the admin role; any other email asking for admin is refused. NGO
// registrations enter the pending queue and notify admin observers.
// Returns the saved account plus an advisory message for NGOs.
func (uc *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, "", xerrors.ErrNameRequired
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, "", xerrors.ErrEmailRequired
	}
	if in.Password == "" {
		return nil, "", xerrors.ErrPasswordRequired
	}

	role := in.Role
	if role == "" {
		role = domain.RoleVictim
	}
	if !role.Valid() {
		return nil, "", xerrors.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	// The one configured super-admin address is always an admin account,
	// whatever role the request asked for. Nobody else may claim the role.
	if email == uc.superAdminEmail {
		role = domain.RoleAdmin
	} else if role == domain.RoleAdmin {
		return nil, "", xerrors.Forbidden(xerrors.ReasonNotOwner, "admin role is reserved")
	}

	if role == domain.RoleNGO {
		if isBlankPtr(in.OrganizationName) || isBlankPtr(in.OrganizationEmail) {
			return nil, "", xerrors.ErrOrganizationRequired
		}
	}
	if role == domain.RoleVolunteer && isBlankPtr(in.AssociatedNGO) {
		return nil, "", xerrors.ErrAssociatedNGORequired
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := domain.NewUser(domain.NewUserParams{
		Name:              strings.TrimSpace(in.Name),
		Email:             email,
		PasswordHash:      hashed,
		Role:              role,
		Location:          in.Location,
		Phone:             in.Phone,
		AssociatedNGO:     in.AssociatedNGO,
		OrganizationName:  in.OrganizationName,
		OrganizationEmail: in.OrganizationEmail,
	})

	saved, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	advisory := ""
	if saved.Role == domain.RoleNGO {
		advisory = msgNGOAwaitingVerification
		if err := uc.events.Publish(ctx, ws.EventNewNGORegistration, ws.AudienceAdmin, saved.Profile()); err != nil {
			log.Printf("[WARN] failed to notify admins of NGO registration %s: %v", saved.ID, err)
		}
	}

	return saved, advisory, nil
}

// Login checks credentials. Unverified NGOs may still log in; gated
// actions are blocked elsewhere.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", xerrors.ErrInvalidCredentials
	}

	user, err := uc.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", xerrors.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", xerrors.ErrInvalidCredentials
	}

	advisory := ""
	if user.Role == domain.RoleNGO && !user.IsVerified {
		advisory = msgNGOPendingLogin
	}

	return user, advisory, nil
}

// Me returns the account behind an authenticated identity.
func (uc *AuthUsecase) Me(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

func isBlankPtr(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
