package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Anurag07-07/Resculink/internal/domain"
	"github.com/Anurag07-07/Resculink/internal/service/urgency"
	"github.com/Anurag07-07/Resculink/internal/ws"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

// RequestStore is the persistence surface for aid requests.
type RequestStore interface {
	Create(ctx context.Context, req *domain.AidRequest) error
	GetByID(ctx context.Context, id string) (*domain.AidRequest, error)
	ListAll(ctx context.Context) ([]domain.AidRequest, error)
	AcceptPending(ctx context.Context, id, actorID string) (*domain.AidRequest, error)
	UpdateStatus(ctx context.Context, req *domain.AidRequest) error
}

type RequestUsecase struct {
	requests RequestStore
	users    UserStore
	events   EventPublisher
}

func NewRequestUsecase(requests RequestStore, users UserStore, events EventPublisher) *RequestUsecase {
	return &RequestUsecase{
		requests: requests,
		users:    users,
		events:   events,
	}
}

type CreateRequestInput struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    domain.Category  `json:"category"`
	Location    *domain.GeoPoint `json:"location"`
	ImageURL    *string          `json:"image_url,omitempty"`
}

// Create classifies urgency from the title and description, persists the
// request as pending and broadcasts it to every observer.
func (uc *RequestUsecase) Create(ctx context.Context, ownerID string, in CreateRequestInput) (*domain.AidRequest, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, xerrors.ErrTitleRequired
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, xerrors.ErrDescriptionRequired
	}
	if !in.Category.Valid() {
		return nil, xerrors.ErrInvalidCategory
	}
	if in.Location == nil {
		return nil, xerrors.ErrLocationRequired
	}

	req := &domain.AidRequest{
		ID:          ulid.Make().String(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		Urgency:     urgency.Classify(in.Title + " " + in.Description),
		Status:      domain.StatusPending,
		Location:    *in.Location,
		UserID:      ownerID,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now(),
	}

	if err := uc.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	if err := uc.events.Publish(ctx, ws.EventNewRequest, "", req); err != nil {
		log.Printf("[WARN] failed to broadcast new request %s: %v", req.ID, err)
	}

	return req, nil
}

// ListAll returns every request, newest first.
func (uc *RequestUsecase) ListAll(ctx context.Context) ([]domain.AidRequest, error) {
	return uc.requests.ListAll(ctx)
}

// Accept moves a pending request to in-progress and assigns it to the
// actor. The store enforces the pending precondition atomically, so a
// second accept loses with a conflict. The victim's contact details come
// back with the updated record for hand-off coordination.
func (uc *RequestUsecase) Accept(ctx context.Context, requestID, actorID string) (*domain.AidRequest, *domain.VictimContact, error) {
	req, err := uc.requests.AcceptPending(ctx, requestID, actorID)
	if err != nil {
		return nil, nil, err
	}

	victim, err := uc.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, nil, err
	}
	contact := &domain.VictimContact{
		Name:  victim.Name,
		Email: victim.Email,
		Phone: victim.Phone,
	}

	if err := uc.events.Publish(ctx, ws.EventUpdateRequest, "", req); err != nil {
		log.Printf("[WARN] failed to broadcast accept of request %s: %v", req.ID, err)
	}

	return req, contact, nil
}

// UpdateStatus performs a general transition, primarily used to reach
// resolved. Resolution is allowed for the owning victim, or for verified
// admin/NGO accounts; an NGO may only resolve cases handled by its own
// volunteers.
func (uc *RequestUsecase) UpdateStatus(ctx context.Context, requestID string, newStatus domain.RequestStatus, actorID string) (*domain.AidRequest, error) {
	if !newStatus.Valid() {
		return nil, xerrors.ErrInvalidRequestStatus
	}

	req, err := uc.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	actor, err := uc.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if newStatus == domain.StatusResolved {
		if err := uc.authorizeResolve(ctx, req, actor); err != nil {
			return nil, err
		}
		// ResolvedAt is set exactly once.
		if req.ResolvedAt == nil {
			now := time.Now()
			req.ResolvedAt = &now
		}
	}

	req.Status = newStatus
	if newStatus == domain.StatusInProgress {
		req.AssignedTo = &actor.ID
	}

	if err := uc.requests.UpdateStatus(ctx, req); err != nil {
		return nil, err
	}

	if err := uc.events.Publish(ctx, ws.EventUpdateRequest, "", req); err != nil {
		log.Printf("[WARN] failed to broadcast update of request %s: %v", req.ID, err)
	}

	return req, nil
}

func (uc *RequestUsecase) authorizeResolve(ctx context.Context, req *domain.AidRequest, actor *domain.User) error {
	// Owners may always close their own case.
	if req.UserID == actor.ID {
		return nil
	}

	isAdminOrNGO := actor.Role == domain.RoleAdmin || actor.Role == domain.RoleNGO
	if !isAdminOrNGO || !actor.IsVerified {
		return xerrors.Forbidden(xerrors.ReasonNotOwner, "not authorized to resolve this request, verification required")
	}

	// An NGO may resolve only cases handled by its own volunteers.
	if actor.Role == domain.RoleNGO && req.AssignedTo != nil {
		volunteer, err := uc.users.GetByID(ctx, *req.AssignedTo)
		if err != nil {
			return xerrors.Forbidden(xerrors.ReasonNotSameOrg, "assigned volunteer not found")
		}
		if volunteer.AssociatedNGO == nil || *volunteer.AssociatedNGO != actor.ID {
			return xerrors.Forbidden(xerrors.ReasonNotSameOrg, "you can only resolve requests assigned to your organization's volunteers")
		}
	}

	return nil
}
