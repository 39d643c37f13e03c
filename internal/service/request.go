package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/logger"
	"verdata-backend/internal/repository"
	"verdata-backend/internal/security"
	"verdata-backend/internal/utils"
)

type requestService struct {
	repo     repository.RequestRepository
	policy   *security.AccessPolicy
	emailSvc EmailService
	now      func() time.Time
}

func NewRequestService(repo repository.RequestRepository, policy *security.AccessPolicy, emailSvc EmailService) RequestService {
	return &requestService{
		repo:     repo,
		policy:   policy,
		emailSvc: emailSvc,
		now:      time.Now,
	}
}

func (s *requestService) Submit(ctx context.Context, sess *domain.Session, draft SubmitRequestInput) (*domain.VerificationRequest, error) {
	if err := s.policy.CanSubmit(sess); err != nil {
		return nil, err
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	req := &domain.VerificationRequest{
		ID:            uuid.New().String(),
		ApplicantName: sess.Name,
		NIK:           draft.NIK,
		PhoneNumber:   draft.PhoneNumber,
		Email:         draft.Email,
		Address:       draft.Address,
		RequestType:   draft.RequestType,
		Description:   draft.Description,
		Status:        domain.RequestStatusPending,
		SubmittedAt:   s.now(),
	}

	for _, doc := range draft.Documents {
		mediaType := domain.MediaTypeFromMIME(doc.MIMEType)
		password := ""
		if mediaType == domain.MediaTypePDF {
			password = doc.Password
		}
		req.Documents = append(req.Documents, domain.Document{
			ID:         uuid.New().String(),
			Name:       doc.Name,
			MediaType:  mediaType,
			Password:   password,
			StorageKey: path.Join(req.ID, doc.Name),
		})
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create verification request: %w", err)
	}
	logger.Info("verification request submitted",
		"id", req.ID, "applicant", req.ApplicantName, "type", req.RequestType)

	// Receipt email is best effort; a mail failure never rolls back a
	// committed submission.
	if err := s.emailSvc.SendSubmissionReceipt(ctx, req.Email, req.ApplicantName, req); err != nil {
		logger.Warn("failed to send submission receipt", "id", req.ID, "error", err)
	}

	return req, nil
}

func (s *requestService) ListMine(ctx context.Context, sess *domain.Session) ([]domain.VerificationRequest, error) {
	if !sess.IsApplicant() {
		return nil, domain.ErrForbidden
	}

	reqs, err := s.repo.ListByApplicant(ctx, sess.Name)
	if err != nil {
		return nil, err
	}

	// Name match alone would let two applicants with the same display name
	// see each other's records; the session NIK narrows it to the owner.
	mine := make([]domain.VerificationRequest, 0, len(reqs))
	for _, req := range reqs {
		if s.policy.Owns(sess, &req) {
			mine = append(mine, req)
		}
	}
	return mine, nil
}

func (s *requestService) Get(ctx context.Context, sess *domain.Session, id string) (*domain.VerificationRequest, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanViewRequest(sess, req); err != nil {
		return nil, err
	}
	return req, nil
}

func validateDraft(draft SubmitRequestInput) error {
	if !utils.ValidNIK(draft.NIK) {
		return domain.NewValidationError("nik", "must be a 16-digit number")
	}
	if strings.TrimSpace(draft.PhoneNumber) == "" {
		return domain.NewValidationError("phone_number", "must not be empty")
	}
	if strings.TrimSpace(draft.Email) == "" {
		return domain.NewValidationError("email", "must not be empty")
	}
	if strings.TrimSpace(draft.Address) == "" {
		return domain.NewValidationError("address", "must not be empty")
	}
	if !domain.ValidRequestType(draft.RequestType) {
		return domain.NewValidationError("request_type", "unknown request type")
	}
	if strings.TrimSpace(draft.Description) == "" {
		return domain.NewValidationError("description", "must not be empty")
	}
	if len(draft.Documents) == 0 {
		return domain.NewValidationError("documents", "at least one supporting document is required")
	}
	for _, doc := range draft.Documents {
		if strings.TrimSpace(doc.Name) == "" {
			return domain.NewValidationError("documents", "document name must not be empty")
		}
	}
	return nil
}
