package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/security"
)

func TestAdminService_Decide(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve", func(t *testing.T) {
		repo := new(MockRequestRepo)
		emailSvc := new(MockEmailService)
		svc := NewAdminService(repo, security.NewAccessPolicy(), emailSvc)

		now := time.Now()
		decided := &domain.VerificationRequest{
			ID:            "2",
			ApplicantName: "Jane Smith",
			Email:         "jane@example.com",
			Status:        domain.RequestStatusApproved,
			Notes:         "Valid",
			ProcessedBy:   "Administrator",
			ProcessedAt:   &now,
		}
		repo.On("UpdateDecision", ctx, "2", domain.RequestStatusApproved, "Valid", "Administrator", mock.AnythingOfType("time.Time")).Return(nil).Once()
		repo.On("GetByID", ctx, "2").Return(decided, nil).Once()
		emailSvc.On("SendDecisionNotification", ctx, "jane@example.com", "Jane Smith", decided).Return(nil).Once()

		req, err := svc.Decide(ctx, adminSession(), "2", domain.RequestStatusApproved, "Valid")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusApproved, req.Status)
		assert.Equal(t, "Valid", req.Notes)
		assert.Equal(t, "Administrator", req.ProcessedBy)
		assert.NotNil(t, req.ProcessedAt)

		repo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("NotesTrimmed", func(t *testing.T) {
		repo := new(MockRequestRepo)
		emailSvc := new(MockEmailService)
		svc := NewAdminService(repo, security.NewAccessPolicy(), emailSvc)

		repo.On("UpdateDecision", ctx, "2", domain.RequestStatusRejected, "tidak lengkap", "Administrator", mock.AnythingOfType("time.Time")).Return(nil).Once()
		repo.On("GetByID", ctx, "2").Return(&domain.VerificationRequest{ID: "2", Status: domain.RequestStatusRejected}, nil).Once()
		emailSvc.On("SendDecisionNotification", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.Decide(ctx, adminSession(), "2", domain.RequestStatusRejected, "  tidak lengkap  ")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("EmptyNotes", func(t *testing.T) {
		repo := new(MockRequestRepo)
		svc := NewAdminService(repo, security.NewAccessPolicy(), new(MockEmailService))

		_, err := svc.Decide(ctx, adminSession(), "2", domain.RequestStatusApproved, "   ")
		assert.True(t, domain.IsValidation(err))
		repo.AssertNotCalled(t, "UpdateDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BadDecision", func(t *testing.T) {
		repo := new(MockRequestRepo)
		svc := NewAdminService(repo, security.NewAccessPolicy(), new(MockEmailService))

		_, err := svc.Decide(ctx, adminSession(), "2", domain.RequestStatusPending, "ok")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("ApplicantForbidden", func(t *testing.T) {
		repo := new(MockRequestRepo)
		svc := NewAdminService(repo, security.NewAccessPolicy(), new(MockEmailService))

		_, err := svc.Decide(ctx, applicantSession(), "2", domain.RequestStatusApproved, "ok")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "UpdateDecision", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("AlreadyDecided", func(t *testing.T) {
		repo := new(MockRequestRepo)
		svc := NewAdminService(repo, security.NewAccessPolicy(), new(MockEmailService))

		repo.On("UpdateDecision", ctx, "2", domain.RequestStatusApproved, "Valid", "Administrator", mock.AnythingOfType("time.Time")).
			Return(domain.ErrNotPending).Once()

		_, err := svc.Decide(ctx, adminSession(), "2", domain.RequestStatusApproved, "Valid")
		assert.ErrorIs(t, err, domain.ErrNotPending)
	})

	t.Run("EmailFailureDoesNotFailDecision", func(t *testing.T) {
		repo := new(MockRequestRepo)
		emailSvc := new(MockEmailService)
		svc := NewAdminService(repo, security.NewAccessPolicy(), emailSvc)

		repo.On("UpdateDecision", ctx, "2", domain.RequestStatusApproved, "Valid", "Administrator", mock.AnythingOfType("time.Time")).Return(nil).Once()
		repo.On("GetByID", ctx, "2").Return(&domain.VerificationRequest{ID: "2", Status: domain.RequestStatusApproved}, nil).Once()
		emailSvc.On("SendDecisionNotification", ctx, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError).Once()

		_, err := svc.Decide(ctx, adminSession(), "2", domain.RequestStatusApproved, "Valid")
		assert.NoError(t, err)
	})
}

func TestAdminService_ListRequests(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepo)
	svc := NewAdminService(repo, security.NewAccessPolicy(), new(MockEmailService))

	repo.On("ListAll", ctx).Return([]domain.VerificationRequest{{ID: "1"}, {ID: "2"}}, nil).Once()

	reqs, err := svc.ListRequests(ctx, adminSession())
	assert.NoError(t, err)
	assert.Len(t, reqs, 2)

	t.Run("ApplicantForbidden", func(t *testing.T) {
		_, err := svc.ListRequests(ctx, applicantSession())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestAdminService_Stats(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRequestRepo)
	svc := NewAdminService(repo, security.NewAccessPolicy(), new(MockEmailService))

	repo.On("CountByStatus", ctx).Return(map[domain.RequestStatus]int{
		domain.RequestStatusPending:  3,
		domain.RequestStatusApproved: 2,
		domain.RequestStatusRejected: 1,
	}, nil).Once()

	stats, err := svc.Stats(ctx, adminSession())
	assert.NoError(t, err)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 3, stats.Pending)
	assert.Equal(t, 2, stats.Approved)
	assert.Equal(t, 1, stats.Rejected)

	t.Run("ApplicantForbidden", func(t *testing.T) {
		_, err := svc.Stats(ctx, applicantSession())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
