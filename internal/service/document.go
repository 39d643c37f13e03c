package service

import (
	"context"
	"time"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/repository"
	"verdata-backend/internal/security"
	"verdata-backend/internal/storage"
)

const downloadURLExpiry = 15 * time.Minute

type documentService struct {
	repo    repository.RequestRepository
	policy  *security.AccessPolicy
	storage storage.DocumentStorage
}

func NewDocumentService(repo repository.RequestRepository, policy *security.AccessPolicy, docStorage storage.DocumentStorage) DocumentService {
	return &documentService{
		repo:    repo,
		policy:  policy,
		storage: docStorage,
	}
}

func (s *documentService) OpenDocument(ctx context.Context, sess *domain.Session, requestID, documentID string) (string, error) {
	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return "", err
	}
	if err := s.policy.CanViewRequest(sess, req); err != nil {
		return "", err
	}

	for _, doc := range req.Documents {
		if doc.ID == documentID {
			return s.storage.GenerateDownloadURL(ctx, doc.StorageKey, downloadURLExpiry)
		}
	}
	return "", domain.ErrNotFound
}
