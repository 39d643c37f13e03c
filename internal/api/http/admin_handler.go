package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	reqs, err := h.adminSvc.ListRequests(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.VerificationRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *AdminHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	req, err := h.adminSvc.GetRequest(r.Context(), sess, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type decisionRequest struct {
	Decision domain.RequestStatus `json:"decision"`
	Notes    string               `json:"notes"`
}

func (h *AdminHandler) Decide(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var body decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	req, err := h.adminSvc.Decide(r.Context(), sess, mux.Vars(r)["id"], body.Decision, body.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	stats, err := h.adminSvc.Stats(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
