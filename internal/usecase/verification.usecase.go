package usecase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Anurag07-07/Resculink/internal/domain"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

// SummaryCache keeps the public verified-NGO listing off the database for
// the common read path.
type SummaryCache interface {
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, namespace, key string) error
}

const (
	ngoCacheNamespace = "ngo"
	ngoCacheKey       = "verified"
	ngoCacheTTL       = 5 * time.Minute
)

type VerificationUsecase struct {
	users UserStore
	cache SummaryCache
}

func NewVerificationUsecase(users UserStore, cache SummaryCache) *VerificationUsecase {
	return &VerificationUsecase{users: users, cache: cache}
}

// ListPending returns every NGO account awaiting review.
func (uc *VerificationUsecase) ListPending(ctx context.Context) ([]domain.User, error) {
	return uc.users.ListPendingNGOs(ctx)
}

// Decide records an admin's approval or rejection of an NGO. Approving an
// already-approved NGO is harmless; state never regresses from a repeat
// call with the same outcome.
func (uc *VerificationUsecase) Decide(ctx context.Context, ngoID string, outcome domain.VerificationStatus, adminID string) (*domain.User, error) {
	if outcome != domain.VerificationApproved && outcome != domain.VerificationRejected {
		return nil, xerrors.ErrInvalidDecision
	}

	ngo, err := uc.users.GetByID(ctx, ngoID)
	if err != nil {
		return nil, err
	}
	if ngo.Role != domain.RoleNGO {
		return nil, xerrors.ErrNotAnNGO
	}

	updated, err := uc.users.UpdateVerification(ctx, ngoID, outcome, adminID, time.Now())
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, ngoCacheNamespace, ngoCacheKey); err != nil {
			log.Printf("[WARN] failed to invalidate verified NGO cache: %v", err)
		}
	}

	return updated, nil
}

// VerifiedNGOs returns the public {id, organizationName, name} listing,
// cache-first.
func (uc *VerificationUsecase) VerifiedNGOs(ctx context.Context) ([]domain.NGOSummary, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, ngoCacheNamespace, ngoCacheKey); err == nil && cached != "" {
			var ngos []domain.NGOSummary
			if err := json.Unmarshal([]byte(cached), &ngos); err == nil {
				return ngos, nil
			}
		}
	}

	ngos, err := uc.users.ListVerifiedNGOs(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(ngos); err == nil {
			if err := uc.cache.Set(ctx, ngoCacheNamespace, ngoCacheKey, payload, ngoCacheTTL); err != nil {
				log.Printf("[WARN] failed to cache verified NGO list: %v", err)
			}
		}
	}

	return ngos, nil
}

// Gate blocks gated actions for NGO accounts that are not approved.
// Pending and rejected NGOs get distinguishable reasons; every other role
// passes unconditionally.
func (uc *VerificationUsecase) Gate(ctx context.Context, userID string) error {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Role != domain.RoleNGO {
		return nil
	}

	switch user.VerificationStatus {
	case domain.VerificationRejected:
		return xerrors.Forbidden(xerrors.ReasonRejected, "your NGO verification was rejected, please contact support")
	case domain.VerificationApproved:
		return nil
	default:
		return xerrors.Forbidden(xerrors.ReasonPending, "your NGO account is pending verification, you cannot perform this action until approved by an admin")
	}
}
