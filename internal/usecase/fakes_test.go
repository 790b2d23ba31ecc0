package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Anurag07-07/Resculink/internal/domain"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, xerrors.ErrEmailAlreadyInUse
		}
	}
	cp := *user
	s.users[user.ID] = &cp
	out := cp
	return &out, nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, xerrors.ErrUserNotFound
}

func (s *fakeUserStore) ListPendingNGOs(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for _, u := range s.users {
		if u.Role == domain.RoleNGO && u.VerificationStatus == domain.VerificationPending {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *fakeUserStore) ListVerifiedNGOs(ctx context.Context) ([]domain.NGOSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.NGOSummary
	for _, u := range s.users {
		if u.Role == domain.RoleNGO && u.IsVerified {
			org := ""
			if u.OrganizationName != nil {
				org = *u.OrganizationName
			}
			out = append(out, domain.NGOSummary{ID: u.ID, OrganizationName: org, Name: u.Name})
		}
	}
	return out, nil
}

func (s *fakeUserStore) UpdateVerification(ctx context.Context, id string, status domain.VerificationStatus, verifiedBy string, verifiedAt time.Time) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	u.VerificationStatus = status
	u.IsVerified = status == domain.VerificationApproved
	u.VerifiedBy = &verifiedBy
	u.VerifiedAt = &verifiedAt
	cp := *u
	return &cp, nil
}

type fakeRequestStore struct {
	mu       sync.Mutex
	requests map[string]*domain.AidRequest
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: make(map[string]*domain.AidRequest)}
}

func (s *fakeRequestStore) Create(ctx context.Context, req *domain.AidRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *req
	s.requests[req.ID] = &cp
	return nil
}

func (s *fakeRequestStore) GetByID(ctx context.Context, id string) (*domain.AidRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, xerrors.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (s *fakeRequestStore) ListAll(ctx context.Context) ([]domain.AidRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AidRequest
	for _, req := range s.requests {
		out = append(out, *req)
	}
	return out, nil
}

func (s *fakeRequestStore) AcceptPending(ctx context.Context, id, actorID string) (*domain.AidRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, xerrors.ErrRequestNotFound
	}
	if req.Status != domain.StatusPending {
		return nil, xerrors.ErrRequestNotPending
	}
	req.Status = domain.StatusInProgress
	req.AssignedTo = &actorID
	cp := *req
	return &cp, nil
}

func (s *fakeRequestStore) UpdateStatus(ctx context.Context, req *domain.AidRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.requests[req.ID]
	if !ok {
		return xerrors.ErrRequestNotFound
	}
	stored.Status = req.Status
	stored.AssignedTo = req.AssignedTo
	stored.ResolvedAt = req.ResolvedAt
	return nil
}

type publishedEvent struct {
	Type     string
	Audience string
	Data     interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(ctx context.Context, eventType, audience string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Type: eventType, Audience: audience, Data: data})
	return nil
}

func (p *fakePublisher) byType(eventType string) []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []publishedEvent
	for _, e := range p.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
