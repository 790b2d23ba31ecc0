package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anurag07-07/Resculink/internal/domain"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, namespace, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[namespace+":"+key]
	if !ok {
		return "", xerrors.ErrNotFound
	}
	return v, nil
}

func (c *fakeCache) Set(ctx context.Context, namespace, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.entries[namespace+":"+key] = string(v)
	case string:
		c.entries[namespace+":"+key] = v
	}
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, namespace, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, namespace+":"+key)
	return nil
}

func newVerificationFixture(t *testing.T) (*VerificationUsecase, *fakeUserStore, *domain.User, *domain.User) {
	t.Helper()
	users := newFakeUserStore()

	admin, err := users.Create(context.Background(), domain.NewUser(domain.NewUserParams{
		Name: "Admin", Email: "admin@resculink.org", PasswordHash: "x", Role: domain.RoleAdmin,
	}))
	require.NoError(t, err)

	ngo, err := users.Create(context.Background(), domain.NewUser(domain.NewUserParams{
		Name: "Helping Hands", Email: "ngo@test.com", PasswordHash: "x", Role: domain.RoleNGO,
		OrganizationName: strPtr("Helping Hands Intl"), OrganizationEmail: strPtr("contact@helpinghands.org"),
	}))
	require.NoError(t, err)

	return NewVerificationUsecase(users, newFakeCache()), users, admin, ngo
}

func TestListPending(t *testing.T) {
	uc, _, _, ngo := newVerificationFixture(t)

	pending, err := uc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, ngo.ID, pending[0].ID)
}

func TestDecideValidation(t *testing.T) {
	uc, _, admin, ngo := newVerificationFixture(t)

	_, err := uc.Decide(context.Background(), ngo.ID, "maybe", admin.ID)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)

	_, err = uc.Decide(context.Background(), "missing", domain.VerificationApproved, admin.ID)
	assert.ErrorIs(t, err, xerrors.ErrUserNotFound)

	_, err = uc.Decide(context.Background(), admin.ID, domain.VerificationApproved, admin.ID)
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}

func TestDecideApprove(t *testing.T) {
	uc, _, admin, ngo := newVerificationFixture(t)

	updated, err := uc.Decide(context.Background(), ngo.ID, domain.VerificationApproved, admin.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsVerified)
	assert.Equal(t, domain.VerificationApproved, updated.VerificationStatus)
	require.NotNil(t, updated.VerifiedBy)
	assert.Equal(t, admin.ID, *updated.VerifiedBy)
	assert.NotNil(t, updated.VerifiedAt)

	// repeating the decision does not regress state
	again, err := uc.Decide(context.Background(), ngo.ID, domain.VerificationApproved, admin.ID)
	require.NoError(t, err)
	assert.True(t, again.IsVerified)
	assert.Equal(t, domain.VerificationApproved, again.VerificationStatus)
}

func TestDecideReject(t *testing.T) {
	uc, _, admin, ngo := newVerificationFixture(t)

	updated, err := uc.Decide(context.Background(), ngo.ID, domain.VerificationRejected, admin.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsVerified)
	assert.Equal(t, domain.VerificationRejected, updated.VerificationStatus)
}

func TestGate(t *testing.T) {
	uc, users, admin, ngo := newVerificationFixture(t)

	victim, err := users.Create(context.Background(), domain.NewUser(domain.NewUserParams{
		Name: "John Doe", Email: "victim@test.com", PasswordHash: "x", Role: domain.RoleVictim,
	}))
	require.NoError(t, err)

	// non-NGO roles pass unconditionally
	assert.NoError(t, uc.Gate(context.Background(), victim.ID))
	assert.NoError(t, uc.Gate(context.Background(), admin.ID))

	// pending NGO is blocked with the pending reason
	err = uc.Gate(context.Background(), ngo.ID)
	require.Error(t, err)
	assert.Equal(t, xerrors.ReasonPending, xerrors.ReasonOf(err))

	// approved NGO passes
	_, err = uc.Decide(context.Background(), ngo.ID, domain.VerificationApproved, admin.ID)
	require.NoError(t, err)
	assert.NoError(t, uc.Gate(context.Background(), ngo.ID))

	// rejected NGO is blocked permanently with the rejected reason
	_, err = uc.Decide(context.Background(), ngo.ID, domain.VerificationRejected, admin.ID)
	require.NoError(t, err)
	err = uc.Gate(context.Background(), ngo.ID)
	require.Error(t, err)
	assert.Equal(t, xerrors.ReasonRejected, xerrors.ReasonOf(err))
}

func TestVerifiedNGOsUsesCache(t *testing.T) {
	uc, _, admin, ngo := newVerificationFixture(t)

	_, err := uc.Decide(context.Background(), ngo.ID, domain.VerificationApproved, admin.ID)
	require.NoError(t, err)

	first, err := uc.VerifiedNGOs(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Helping Hands Intl", first[0].OrganizationName)

	// second read is served from cache and matches
	second, err := uc.VerifiedNGOs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// rejection invalidates the cache
	_, err = uc.Decide(context.Background(), ngo.ID, domain.VerificationRejected, admin.ID)
	require.NoError(t, err)
	third, err := uc.VerifiedNGOs(context.Background())
	require.NoError(t, err)
	assert.Len(t, third, 0)
}
