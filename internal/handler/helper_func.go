package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/Anurag07-07/Resculink/pkg/response"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

// writeError maps the error taxonomy onto HTTP statuses. Authorization
// failures carry their reason code in the body.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, xerrors.ErrInvalidInput),
		errors.Is(err, xerrors.ErrEmailAlreadyInUse):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, xerrors.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, xerrors.ErrForbidden):
		response.ErrorWithCode(w, http.StatusForbidden, xerrors.ReasonOf(err), err.Error())
	case errors.Is(err, xerrors.ErrUserNotFound),
		errors.Is(err, xerrors.ErrRequestNotFound),
		errors.Is(err, xerrors.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, xerrors.ErrConflict):
		response.Error(w, http.StatusConflict, err.Error())
	default:
		log.Printf("[ERROR] unexpected error: %v", err)
		response.Error(w, http.StatusInternalServerError, "server error")
	}
}
