package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anurag07-07/Resculink/internal/domain"
	"github.com/Anurag07-07/Resculink/internal/ws"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

const superAdminEmail = "admin@resculink.org"

func newAuthFixture() (*AuthUsecase, *fakeUserStore, *fakePublisher) {
	users := newFakeUserStore()
	events := &fakePublisher{}
	return NewAuthUsecase(users, events, superAdminEmail), users, events
}

func strPtr(s string) *string { return &s }

func registerNGO(t *testing.T, uc *AuthUsecase, email string) *domain.User {
	t.Helper()
	ngo, _, err := uc.Register(context.Background(), RegisterInput{
		Name:              "Helping Hands",
		Email:             email,
		Password:          "password",
		Role:              domain.RoleNGO,
		OrganizationName:  strPtr("Helping Hands Intl"),
		OrganizationEmail: strPtr("contact@helpinghands.org"),
	})
	require.NoError(t, err)
	return ngo
}

func TestRegisterVictimDefaults(t *testing.T) {
	uc, _, _ := newAuthFixture()

	user, advisory, err := uc.Register(context.Background(), RegisterInput{
		Name:     "John Doe",
		Email:    "Victim@Test.com",
		Password: "password",
	})
	require.NoError(t, err)
	assert.Empty(t, advisory)
	assert.Equal(t, domain.RoleVictim, user.Role)
	assert.Equal(t, "victim@test.com", user.Email)
	assert.True(t, user.IsVerified)
	assert.Equal(t, domain.VerificationApproved, user.VerificationStatus)
}

func TestRegisterAdminRoleIsReserved(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Imposter",
		Email:    "someone@else.com",
		Password: "password",
		Role:     domain.RoleAdmin,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrForbidden)
}

func TestRegisterSuperAdminEmailForcesAdminRole(t *testing.T) {
	uc, _, _ := newAuthFixture()

	user, _, err := uc.Register(context.Background(), RegisterInput{
		Name:     "The Admin",
		Email:    superAdminEmail,
		Password: "password",
		Role:     domain.RoleVictim, // asked for victim, gets admin anyway
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.True(t, user.IsVerified)
	assert.Equal(t, domain.VerificationApproved, user.VerificationStatus)
}

func TestRegisterNGORequiresOrganization(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Helping Hands",
		Email:    "ngo@test.com",
		Password: "password",
		Role:     domain.RoleNGO,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestRegisterNGOEntersPendingQueueAndNotifiesAdmins(t *testing.T) {
	uc, _, events := newAuthFixture()

	ngo, advisory, err := uc.Register(context.Background(), RegisterInput{
		Name:              "Helping Hands",
		Email:             "ngo@test.com",
		Password:          "password",
		Role:              domain.RoleNGO,
		OrganizationName:  strPtr("Helping Hands Intl"),
		OrganizationEmail: strPtr("contact@helpinghands.org"),
	})
	require.NoError(t, err)

	assert.False(t, ngo.IsVerified)
	assert.Equal(t, domain.VerificationPending, ngo.VerificationStatus)
	assert.NotEmpty(t, advisory)

	published := events.byType(ws.EventNewNGORegistration)
	require.Len(t, published, 1)
	assert.Equal(t, ws.AudienceAdmin, published[0].Audience)
}

func TestRegisterVolunteerRequiresAssociatedNGO(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Jane Smith",
		Email:    "volunteer@test.com",
		Password: "password",
		Role:     domain.RoleVolunteer,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "dup@test.com", Password: "password",
	})
	require.NoError(t, err)

	_, _, err = uc.Register(context.Background(), RegisterInput{
		Name: "B", Email: "dup@test.com", Password: "password",
	})
	assert.ErrorIs(t, err, xerrors.ErrEmailAlreadyInUse)
}

func TestLogin(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Name: "John Doe", Email: "victim@test.com", Password: "password",
	})
	require.NoError(t, err)

	user, advisory, err := uc.Login(context.Background(), "victim@test.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "victim@test.com", user.Email)
	assert.Empty(t, advisory)

	_, _, err = uc.Login(context.Background(), "victim@test.com", "wrong")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)

	_, _, err = uc.Login(context.Background(), "nobody@test.com", "password")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestLoginUnverifiedNGOGetsAdvisoryButIsNotBlocked(t *testing.T) {
	uc, _, _ := newAuthFixture()
	registerNGO(t, uc, "ngo@test.com")

	user, advisory, err := uc.Login(context.Background(), "ngo@test.com", "password")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleNGO, user.Role)
	assert.NotEmpty(t, advisory)
}
