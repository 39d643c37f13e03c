package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"verdata-backend/internal/security"
	"verdata-backend/internal/service"
	"verdata-backend/internal/storage"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	AuthSvc      service.AuthService
	RequestSvc   service.RequestService
	AdminSvc     service.AdminService
	DocumentSvc  service.DocumentService
	Tokens       security.TokenManager
	LocalStorage storage.DocumentStorage
}

// NewRouter builds the full API route table. Login endpoints are public;
// everything else sits behind the session middleware.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()

	authHandler := NewAuthHandler(deps.AuthSvc)
	requestHandler := NewRequestHandler(deps.RequestSvc, deps.DocumentSvc)
	adminHandler := NewAdminHandler(deps.AdminSvc)
	authMw := NewAuthMiddleware(deps.Tokens)

	// Public endpoints
	router.HandleFunc("/api/v1/auth/applicant/login", authHandler.ApplicantLogin).Methods("POST")
	router.HandleFunc("/api/v1/auth/admin/login", authHandler.AdminLogin).Methods("POST")
	RegisterLocalStorageRoutes(router, deps.LocalStorage)

	// Applicant endpoints
	applicant := router.PathPrefix("/api/v1/requests").Subrouter()
	applicant.Use(authMw.Handler)
	applicant.HandleFunc("", requestHandler.Submit).Methods("POST")
	applicant.HandleFunc("", requestHandler.ListMine).Methods("GET")
	applicant.HandleFunc("/{id}", requestHandler.Get).Methods("GET")
	applicant.HandleFunc("/{id}/documents/{docID}", requestHandler.OpenDocument).Methods("GET")

	// Admin endpoints
	admin := router.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(authMw.Handler)
	admin.HandleFunc("/requests", adminHandler.ListRequests).Methods("GET")
	admin.HandleFunc("/requests/{id}", adminHandler.GetRequest).Methods("GET")
	admin.HandleFunc("/requests/{id}/decision", adminHandler.Decide).Methods("POST")
	admin.HandleFunc("/stats", adminHandler.Stats).Methods("GET")

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	return router
}
