package http

import (
	"encoding/json"
	"net/http"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type applicantLoginRequest struct {
	Name string `json:"name"`
	NIK  string `json:"nik"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

func (h *AuthHandler) ApplicantLogin(w http.ResponseWriter, r *http.Request) {
	var req applicantLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	sess, token, err := h.authSvc.LoginApplicant(r.Context(), req.Name, req.NIK)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Session: sess})
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	sess, token, err := h.authSvc.LoginAdmin(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Session: sess})
}
