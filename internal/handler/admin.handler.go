package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Anurag07-07/Resculink/internal/domain"
	"github.com/Anurag07-07/Resculink/internal/middleware"
	"github.com/Anurag07-07/Resculink/internal/usecase"
	"github.com/Anurag07-07/Resculink/pkg/response"
)

type AdminHandler struct {
	uc *usecase.VerificationUsecase
}

func NewAdminHandler(uc *usecase.VerificationUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// HandlePendingNGOs lists every NGO still awaiting review.
func (h *AdminHandler) HandlePendingNGOs(w http.ResponseWriter, r *http.Request) {
	ngos, err := h.uc.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	profiles := make([]*domain.Profile, 0, len(ngos))
	for i := range ngos {
		profiles = append(profiles, ngos[i].Profile())
	}
	response.JSON(w, http.StatusOK, profiles)
}

type verifyNGORequest struct {
	Status domain.VerificationStatus `json:"status"`
}

// HandleVerifyNGO records the admin's approve/reject decision.
func (h *AdminHandler) HandleVerifyNGO(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok || adminID == "" {
		response.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body verifyNGORequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ngo, err := h.uc.Decide(r.Context(), chi.URLParam(r, "id"), body.Status, adminID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, ngo.Profile())
}
