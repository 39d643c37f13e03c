package memory

import (
	"context"
	"sync"
	"time"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/repository"
)

// Store is an in-memory RequestRepository. Records are kept in submission
// order; all methods copy on the way in and out so callers cannot mutate
// stored state behind the lock.
type Store struct {
	mu    sync.Mutex
	byID  map[string]*domain.VerificationRequest
	order []string
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*domain.VerificationRequest)}
}

var _ repository.RequestRepository = (*Store)(nil)

func (s *Store) Create(ctx context.Context, req *domain.VerificationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := cloneRequest(req)
	s.byID[req.ID] = cp
	s.order = append(s.order, req.ID)
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*domain.VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneRequest(req), nil
}

func (s *Store) ListAll(ctx context.Context) ([]domain.VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reqs := make([]domain.VerificationRequest, 0, len(s.order))
	for _, id := range s.order {
		reqs = append(reqs, *cloneRequest(s.byID[id]))
	}
	return reqs, nil
}

func (s *Store) ListByApplicant(ctx context.Context, name string) ([]domain.VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reqs []domain.VerificationRequest
	for _, id := range s.order {
		if s.byID[id].ApplicantName == name {
			reqs = append(reqs, *cloneRequest(s.byID[id]))
		}
	}
	return reqs, nil
}

func (s *Store) UpdateDecision(ctx context.Context, id string, status domain.RequestStatus, notes, processedBy string, processedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	if req.Status != domain.RequestStatusPending {
		return domain.ErrNotPending
	}
	req.Status = status
	req.Notes = notes
	req.ProcessedBy = processedBy
	t := processedAt
	req.ProcessedAt = &t
	return nil
}

func (s *Store) CountByStatus(ctx context.Context) (map[domain.RequestStatus]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[domain.RequestStatus]int{
		domain.RequestStatusPending:  0,
		domain.RequestStatusApproved: 0,
		domain.RequestStatusRejected: 0,
	}
	for _, req := range s.byID {
		counts[req.Status]++
	}
	return counts, nil
}

func (s *Store) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reqs []domain.VerificationRequest
	for _, id := range s.order {
		req := s.byID[id]
		if req.Status == domain.RequestStatusPending && req.SubmittedAt.Before(cutoff) {
			reqs = append(reqs, *cloneRequest(req))
		}
	}
	return reqs, nil
}

func cloneRequest(req *domain.VerificationRequest) *domain.VerificationRequest {
	cp := *req
	cp.Documents = append([]domain.Document(nil), req.Documents...)
	if req.ProcessedAt != nil {
		t := *req.ProcessedAt
		cp.ProcessedAt = &t
	}
	return &cp
}
