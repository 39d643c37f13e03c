package service

import (
	"context"

	"verdata-backend/internal/domain"
)

type AuthService interface {
	// LoginApplicant establishes a self-asserted applicant session. No
	// identity proofing happens beyond field shape checks.
	LoginApplicant(ctx context.Context, name, nik string) (*domain.Session, string, error)
	// LoginAdmin checks the placeholder administrator credential.
	LoginAdmin(ctx context.Context, username, password string) (*domain.Session, string, error)
}

// DocumentInput is a document reference attached to a draft.
type DocumentInput struct {
	Name     string `json:"name"`
	MIMEType string `json:"mime_type"`
	Password string `json:"password,omitempty"`
}

// SubmitRequestInput is the draft an applicant submits. The applicant name
// comes from the session, never from the draft.
type SubmitRequestInput struct {
	NIK         string             `json:"nik"`
	PhoneNumber string             `json:"phone_number"`
	Email       string             `json:"email"`
	Address     string             `json:"address"`
	RequestType domain.RequestType `json:"request_type"`
	Description string             `json:"description"`
	Documents   []DocumentInput    `json:"documents"`
}

type RequestService interface {
	Submit(ctx context.Context, sess *domain.Session, draft SubmitRequestInput) (*domain.VerificationRequest, error)
	ListMine(ctx context.Context, sess *domain.Session) ([]domain.VerificationRequest, error)
	Get(ctx context.Context, sess *domain.Session, id string) (*domain.VerificationRequest, error)
}

// RequestStats summarizes the store for the admin dashboard.
type RequestStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type AdminService interface {
	ListRequests(ctx context.Context, sess *domain.Session) ([]domain.VerificationRequest, error)
	GetRequest(ctx context.Context, sess *domain.Session, id string) (*domain.VerificationRequest, error)
	// Decide moves a pending request to approved or rejected with mandatory
	// notes. The second decision on the same request fails with
	// domain.ErrNotPending.
	Decide(ctx context.Context, sess *domain.Session, id string, decision domain.RequestStatus, notes string) (*domain.VerificationRequest, error)
	Stats(ctx context.Context, sess *domain.Session) (*RequestStats, error)
}

type DocumentService interface {
	// OpenDocument resolves a stored document into a download URL, subject
	// to the same visibility scoping as reading its parent request.
	OpenDocument(ctx context.Context, sess *domain.Session, requestID, documentID string) (string, error)
}

type EmailService interface {
	SendSubmissionReceipt(ctx context.Context, email, name string, req *domain.VerificationRequest) error
	SendDecisionNotification(ctx context.Context, email, name string, req *domain.VerificationRequest) error
	SendPendingReminder(ctx context.Context, adminEmail string, pending []domain.VerificationRequest) error
}
