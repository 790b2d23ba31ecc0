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

type RequestHandler struct {
	uc *usecase.RequestUsecase
}

func NewRequestHandler(uc *usecase.RequestUsecase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

func (h *RequestHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in usecase.CreateRequestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.uc.Create(r.Context(), userID, in)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, req)
}

func (h *RequestHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.uc.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, requests)
}

type updateStatusRequest struct {
	Status domain.RequestStatus `json:"status"`
}

func (h *RequestHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.uc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), body.Status, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, req)
}

type acceptResponse struct {
	Request       *domain.AidRequest    `json:"request"`
	VictimContact *domain.VictimContact `json:"victim_contact"`
}

func (h *RequestHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	req, contact, err := h.uc.Accept(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, acceptResponse{
		Request:       req,
		VictimContact: contact,
	})
}
