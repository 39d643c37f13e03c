package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/service"
)

type RequestHandler struct {
	requestSvc  service.RequestService
	documentSvc service.DocumentService
}

func NewRequestHandler(requestSvc service.RequestService, documentSvc service.DocumentService) *RequestHandler {
	return &RequestHandler{
		requestSvc:  requestSvc,
		documentSvc: documentSvc,
	}
}

func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var draft service.SubmitRequestInput
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, domain.NewValidationError("body", "invalid JSON"))
		return
	}

	req, err := h.requestSvc.Submit(r.Context(), sess, draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	reqs, err := h.requestSvc.ListMine(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domain.VerificationRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	id := mux.Vars(r)["id"]
	req, err := h.requestSvc.Get(r.Context(), sess, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

type openDocumentResponse struct {
	URL string `json:"url"`
}

func (h *RequestHandler) OpenDocument(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	vars := mux.Vars(r)
	url, err := h.documentSvc.OpenDocument(r.Context(), sess, vars["id"], vars["docID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, openDocumentResponse{URL: url})
}
