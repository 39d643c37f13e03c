package repository

import (
	"context"
	"time"

	"verdata-backend/internal/domain"
)

// RequestRepository is the record store for verification requests. List
// operations return records in submission order. Implementations map their
// storage-level "no rows" onto domain.ErrNotFound and must make
// UpdateDecision atomic with respect to the pending-status check.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.VerificationRequest) error
	GetByID(ctx context.Context, id string) (*domain.VerificationRequest, error)
	ListAll(ctx context.Context) ([]domain.VerificationRequest, error)
	ListByApplicant(ctx context.Context, name string) ([]domain.VerificationRequest, error)

	// UpdateDecision moves a pending request to its terminal status, setting
	// notes, processed_by and processed_at in the same write. It returns
	// domain.ErrNotFound for an unknown id and domain.ErrNotPending when the
	// request was already decided; no fields change on either error.
	UpdateDecision(ctx context.Context, id string, status domain.RequestStatus, notes, processedBy string, processedAt time.Time) error

	CountByStatus(ctx context.Context) (map[domain.RequestStatus]int, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.VerificationRequest, error)
}
