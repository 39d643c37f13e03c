package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.VerificationRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO verification_requests
	          (id, applicant_name, nik, phone_number, email, address, request_type, description, status, submitted_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := tx.ExecContext(ctx, query,
		req.ID, req.ApplicantName, req.NIK, req.PhoneNumber, req.Email, req.Address,
		req.RequestType, req.Description, req.Status, req.SubmittedAt); err != nil {
		return err
	}

	docQuery := `INSERT INTO request_documents (id, request_id, position, name, media_type, password, storage_key)
	             VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, doc := range req.Documents {
		if _, err := tx.ExecContext(ctx, docQuery,
			doc.ID, req.ID, i, doc.Name, doc.MediaType, doc.Password, doc.StorageKey); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.VerificationRequest, error) {
	req := &domain.VerificationRequest{}
	var notes, processedBy sql.NullString
	var processedAt sql.NullTime

	query := `SELECT id, applicant_name, nik, phone_number, email, address, request_type, description,
	                 status, submitted_at, notes, processed_by, processed_at
	          FROM verification_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.ApplicantName, &req.NIK, &req.PhoneNumber, &req.Email, &req.Address,
		&req.RequestType, &req.Description, &req.Status, &req.SubmittedAt,
		&notes, &processedBy, &processedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	req.Notes = notes.String
	req.ProcessedBy = processedBy.String
	if processedAt.Valid {
		t := processedAt.Time
		req.ProcessedAt = &t
	}

	docs, err := r.loadDocuments(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Documents = docs
	return req, nil
}

func (r *requestRepository) ListAll(ctx context.Context) ([]domain.VerificationRequest, error) {
	query := `SELECT id, applicant_name, nik, phone_number, email, address, request_type, description,
	                 status, submitted_at, notes, processed_by, processed_at
	          FROM verification_requests ORDER BY submitted_at, id`
	return r.queryRequests(ctx, query)
}

func (r *requestRepository) ListByApplicant(ctx context.Context, name string) ([]domain.VerificationRequest, error) {
	query := `SELECT id, applicant_name, nik, phone_number, email, address, request_type, description,
	                 status, submitted_at, notes, processed_by, processed_at
	          FROM verification_requests WHERE applicant_name = $1 ORDER BY submitted_at, id`
	return r.queryRequests(ctx, query, name)
}

func (r *requestRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.VerificationRequest, error) {
	query := `SELECT id, applicant_name, nik, phone_number, email, address, request_type, description,
	                 status, submitted_at, notes, processed_by, processed_at
	          FROM verification_requests WHERE status = 'pending' AND submitted_at < $1 ORDER BY submitted_at, id`
	return r.queryRequests(ctx, query, cutoff)
}

// UpdateDecision relies on a single conditional UPDATE so that two decisions
// racing on the same id cannot both succeed.
func (r *requestRepository) UpdateDecision(ctx context.Context, id string, status domain.RequestStatus, notes, processedBy string, processedAt time.Time) error {
	query := `UPDATE verification_requests
	          SET status = $1, notes = $2, processed_by = $3, processed_at = $4
	          WHERE id = $5 AND status = 'pending'`
	res, err := r.db.ExecContext(ctx, query, status, notes, processedBy, processedAt, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Distinguish an unknown id from an already decided request.
		var existing string
		err := r.db.QueryRowContext(ctx, `SELECT status FROM verification_requests WHERE id = $1`, id).Scan(&existing)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		return domain.ErrNotPending
	}
	return nil
}

func (r *requestRepository) CountByStatus(ctx context.Context) (map[domain.RequestStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM verification_requests GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.RequestStatus]int{
		domain.RequestStatusPending:  0,
		domain.RequestStatusApproved: 0,
		domain.RequestStatusRejected: 0,
	}
	for rows.Next() {
		var status domain.RequestStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *requestRepository) queryRequests(ctx context.Context, query string, args ...interface{}) ([]domain.VerificationRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.VerificationRequest
	for rows.Next() {
		var req domain.VerificationRequest
		var notes, processedBy sql.NullString
		var processedAt sql.NullTime
		if err := rows.Scan(
			&req.ID, &req.ApplicantName, &req.NIK, &req.PhoneNumber, &req.Email, &req.Address,
			&req.RequestType, &req.Description, &req.Status, &req.SubmittedAt,
			&notes, &processedBy, &processedAt); err != nil {
			return nil, err
		}
		req.Notes = notes.String
		req.ProcessedBy = processedBy.String
		if processedAt.Valid {
			t := processedAt.Time
			req.ProcessedAt = &t
		}
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range reqs {
		docs, err := r.loadDocuments(ctx, reqs[i].ID)
		if err != nil {
			return nil, err
		}
		reqs[i].Documents = docs
	}
	return reqs, nil
}

func (r *requestRepository) loadDocuments(ctx context.Context, requestID string) ([]domain.Document, error) {
	query := `SELECT id, name, media_type, password, storage_key
	          FROM request_documents WHERE request_id = $1 ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.MediaType, &doc.Password, &doc.StorageKey); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
