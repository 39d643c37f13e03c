package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/logger"
	"verdata-backend/internal/repository"
	"verdata-backend/internal/security"
)

type adminService struct {
	repo     repository.RequestRepository
	policy   *security.AccessPolicy
	emailSvc EmailService
	now      func() time.Time
}

func NewAdminService(repo repository.RequestRepository, policy *security.AccessPolicy, emailSvc EmailService) AdminService {
	return &adminService{
		repo:     repo,
		policy:   policy,
		emailSvc: emailSvc,
		now:      time.Now,
	}
}

func (s *adminService) ListRequests(ctx context.Context, sess *domain.Session) ([]domain.VerificationRequest, error) {
	if err := s.policy.CanListAll(sess); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx)
}

func (s *adminService) GetRequest(ctx context.Context, sess *domain.Session, id string) (*domain.VerificationRequest, error) {
	if err := s.policy.CanListAll(sess); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *adminService) Decide(ctx context.Context, sess *domain.Session, id string, decision domain.RequestStatus, notes string) (*domain.VerificationRequest, error) {
	if err := s.policy.CanDecide(sess); err != nil {
		return nil, err
	}
	if decision != domain.RequestStatusApproved && decision != domain.RequestStatusRejected {
		return nil, domain.NewValidationError("decision", "must be approved or rejected")
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, domain.NewValidationError("notes", "must not be empty")
	}

	if err := s.repo.UpdateDecision(ctx, id, decision, notes, sess.Name, s.now()); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload decided request: %w", err)
	}
	logger.Info("verification request decided",
		"id", req.ID, "decision", decision, "processed_by", sess.Name)

	// Decision mail is best effort; the decision itself is already committed.
	if err := s.emailSvc.SendDecisionNotification(ctx, req.Email, req.ApplicantName, req); err != nil {
		logger.Warn("failed to send decision notification", "id", req.ID, "error", err)
	}

	return req, nil
}

func (s *adminService) Stats(ctx context.Context, sess *domain.Session) (*RequestStats, error) {
	if err := s.policy.CanListAll(sess); err != nil {
		return nil, err
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats := &RequestStats{
		Pending:  counts[domain.RequestStatusPending],
		Approved: counts[domain.RequestStatusApproved],
		Rejected: counts[domain.RequestStatusRejected],
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected
	return stats, nil
}
