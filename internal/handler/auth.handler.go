package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Anurag07-07/Resculink/internal/middleware"
	"github.com/Anurag07-07/Resculink/internal/usecase"
	"github.com/Anurag07-07/Resculink/pkg/jwtutil"
	"github.com/Anurag07-07/Resculink/pkg/response"
)

type AuthHandler struct {
	uc     *usecase.AuthUsecase
	jwtGen *jwtutil.Generator
}

func NewAuthHandler(uc *usecase.AuthUsecase, jwtGen *jwtutil.Generator) *AuthHandler {
	return &AuthHandler{uc: uc, jwtGen: jwtGen}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string      `json:"token"`
	User    interface{} `json:"user"`
	Message string      `json:"message,omitempty"`
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, advisory, err := h.uc.Register(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}

	token, _, err := h.jwtGen.Generate(user.ID, string(user.Role))
	if err != nil {
		log.Printf("[ERROR] failed to sign token for user %s: %v", user.ID, err)
		response.Error(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	response.JSON(w, http.StatusOK, authResponse{
		Token:   token,
		User:    user.Profile(),
		Message: advisory,
	})
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, advisory, err := h.uc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, _, err := h.jwtGen.Generate(user.ID, string(user.Role))
	if err != nil {
		log.Printf("[ERROR] failed to sign token for user %s: %v", user.ID, err)
		response.Error(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	response.JSON(w, http.StatusOK, authResponse{
		Token:   token,
		User:    user.Profile(),
		Message: advisory,
	})
}

func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.uc.Me(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, user.Profile())
}
