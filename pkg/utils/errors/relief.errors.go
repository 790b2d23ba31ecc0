package xerrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}

// Generic
var (
	ErrInvalidInput   = errors.New("invalid input provided")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
)

// Registration / Login
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")

	ErrNameRequired     = fmt.Errorf("%w: name required", ErrInvalidInput)
	ErrEmailRequired    = fmt.Errorf("%w: email required", ErrInvalidInput)
	ErrPasswordRequired = fmt.Errorf("%w: password required", ErrInvalidInput)
	ErrInvalidRole      = fmt.Errorf("%w: invalid role", ErrInvalidInput)

	// NGO registration requires the organization identity up front,
	// volunteers must name the NGO they work under.
	ErrOrganizationRequired  = fmt.Errorf("%w: organization name and official email required", ErrInvalidInput)
	ErrAssociatedNGORequired = fmt.Errorf("%w: volunteers must specify an associated NGO", ErrInvalidInput)
)

// Aid requests
var (
	ErrRequestNotFound      = errors.New("request not found")
	ErrRequestNotPending    = fmt.Errorf("%w: request already accepted or resolved", ErrConflict)
	ErrTitleRequired        = fmt.Errorf("%w: title required", ErrInvalidInput)
	ErrDescriptionRequired  = fmt.Errorf("%w: description required", ErrInvalidInput)
	ErrInvalidCategory      = fmt.Errorf("%w: invalid category", ErrInvalidInput)
	ErrLocationRequired     = fmt.Errorf("%w: location required", ErrInvalidInput)
	ErrInvalidRequestStatus = fmt.Errorf("%w: invalid status", ErrInvalidInput)
)

// NGO verification
var (
	ErrInvalidDecision = fmt.Errorf("%w: decision must be 'approved' or 'rejected'", ErrInvalidInput)
	ErrNotAnNGO        = fmt.Errorf("%w: user is not an NGO", ErrInvalidInput)
)

// Authorization reason codes carried by AuthzError.
const (
	ReasonPending    = "pending"
	ReasonRejected   = "rejected"
	ReasonNotOwner   = "not-owner"
	ReasonNotSameOrg = "not-same-org"
)

// AuthzError is a forbidden outcome with a machine-readable reason.
type AuthzError struct {
	Reason string
	Msg    string
}

func (e *AuthzError) Error() string { return e.Msg }

func (e *AuthzError) Is(target error) bool { return target == ErrForbidden }

func Forbidden(reason, msg string) error {
	return &AuthzError{Reason: reason, Msg: msg}
}

// ReasonOf extracts the reason code from an authorization error, if any.
func ReasonOf(err error) string {
	var ae *AuthzError
	if errors.As(err, &ae) {
		return ae.Reason
	}
	return ""
}
