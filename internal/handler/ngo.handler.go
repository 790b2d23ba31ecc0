package handler

import (
	"net/http"

	"github.com/Anurag07-07/Resculink/internal/usecase"
	"github.com/Anurag07-07/Resculink/pkg/response"
)

type NGOHandler struct {
	uc *usecase.VerificationUsecase
}

func NewNGOHandler(uc *usecase.VerificationUsecase) *NGOHandler {
	return &NGOHandler{uc: uc}
}

// HandleVerifiedNGOs serves the public dropdown of verified NGOs.
func (h *NGOHandler) HandleVerifiedNGOs(w http.ResponseWriter, r *http.Request) {
	ngos, err := h.uc.VerifiedNGOs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, ngos)
}
