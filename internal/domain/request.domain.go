package domain

import "time"

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "in-progress"
	StatusResolved   RequestStatus = "resolved"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type Category string

const (
	CategoryFood    Category = "Food"
	CategoryMedical Category = "Medical"
	CategoryShelter Category = "Shelter"
	CategoryRescue  Category = "Rescue"
	CategoryOther   Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryMedical, CategoryShelter, CategoryRescue, CategoryOther:
		return true
	}
	return false
}

// AidRequest is one victim-submitted request for help. Urgency is fixed at
// creation by the classifier; ResolvedAt is set exactly once, when the
// status reaches resolved.
type AidRequest struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    Category      `json:"category"`
	Urgency     Urgency       `json:"urgency"`
	Status      RequestStatus `json:"status"`
	Location    GeoPoint      `json:"location"`
	UserID      string        `json:"user_id"`
	AssignedTo  *string       `json:"assigned_to,omitempty"`
	ImageURL    *string       `json:"image_url,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
}

// VictimContact is handed to the acceptor so the two sides can coordinate.
type VictimContact struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}
