package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"verdata-backend/internal/storage"
)

// DocumentUploadHandler serves the local storage upload/download endpoints.
// The document content itself is opaque to the core; these endpoints only
// move bytes for the local DocumentStorage backend.
type DocumentUploadHandler struct {
	localStorage storage.DocumentStorage
}

func NewDocumentUploadHandler(localStorage storage.DocumentStorage) *DocumentUploadHandler {
	return &DocumentUploadHandler{localStorage: localStorage}
}

// HandleUpload handles HTTP PUT requests to local upload URLs
func (h *DocumentUploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	if err := h.localStorage.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleDownload handles HTTP GET requests to download documents
func (h *DocumentUploadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.localStorage.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	// Determine content type from file extension
	ext := filepath.Ext(key)
	contentType := "application/octet-stream"
	switch ext {
	case ".pdf":
		contentType = "application/pdf"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	}

	w.Header().Set("Content-Type", contentType)
	io.Copy(w, file)
}

// RegisterLocalStorageRoutes registers the local storage HTTP endpoints
func RegisterLocalStorageRoutes(router *mux.Router, localStorage storage.DocumentStorage) {
	handler := NewDocumentUploadHandler(localStorage)
	router.HandleFunc("/api/v1/upload/{token}", handler.HandleUpload).Methods("PUT")
	router.HandleFunc("/api/v1/download/{key}", handler.HandleDownload).Methods("GET")
}
