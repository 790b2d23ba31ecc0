package handler

import (
	"net/http"

	"github.com/Anurag07-07/Resculink/internal/middleware"
	"github.com/Anurag07-07/Resculink/internal/ws"
	"github.com/Anurag07-07/Resculink/pkg/response"
)

type WSHandler struct {
	server *ws.Server
}

func NewWSHandler(server *ws.Server) *WSHandler {
	return &WSHandler{server: server}
}

func (h *WSHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	role, _ := middleware.GetRole(r.Context())

	h.server.ServeWS(w, r, userID, role)
}
