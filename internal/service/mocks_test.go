package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"verdata-backend/internal/domain"
)

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.VerificationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequestRepo) GetByID(ctx context.Context, id string) (*domain.VerificationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationRequest), args.Error(1)
}

func (m *MockRequestRepo) ListAll(ctx context.Context) ([]domain.VerificationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VerificationRequest), args.Error(1)
}

func (m *MockRequestRepo) ListByApplicant(ctx context.Context, name string) ([]domain.VerificationRequest, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VerificationRequest), args.Error(1)
}

func (m *MockRequestRepo) UpdateDecision(ctx context.Context, id string, status domain.RequestStatus, notes, processedBy string, processedAt time.Time) error {
	args := m.Called(ctx, id, status, notes, processedBy, processedAt)
	return args.Error(0)
}

func (m *MockRequestRepo) CountByStatus(ctx context.Context) (map[domain.RequestStatus]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.RequestStatus]int), args.Error(1)
}

func (m *MockRequestRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.VerificationRequest, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VerificationRequest), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSubmissionReceipt(ctx context.Context, email, name string, req *domain.VerificationRequest) error {
	args := m.Called(ctx, email, name, req)
	return args.Error(0)
}

func (m *MockEmailService) SendDecisionNotification(ctx context.Context, email, name string, req *domain.VerificationRequest) error {
	args := m.Called(ctx, email, name, req)
	return args.Error(0)
}

func (m *MockEmailService) SendPendingReminder(ctx context.Context, adminEmail string, pending []domain.VerificationRequest) error {
	args := m.Called(ctx, adminEmail, pending)
	return args.Error(0)
}
