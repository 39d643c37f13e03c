package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"verdata-backend/internal/domain"
)

func newRequest(id, name, nik string) *domain.VerificationRequest {
	return &domain.VerificationRequest{
		ID:            id,
		ApplicantName: name,
		NIK:           nik,
		PhoneNumber:   "081234567890",
		Email:         name + "@example.com",
		Address:       "Jl. Contoh No. 123",
		RequestType:   domain.RequestTypeKTP,
		Description:   "untuk keperluan bank",
		Documents: []domain.Document{
			{ID: id + "-d1", Name: "KTP.pdf", MediaType: domain.MediaTypePDF, Password: "rahasia"},
		},
		Status:      domain.RequestStatusPending,
		SubmittedAt: time.Now(),
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	req := newRequest("1", "John Doe", "1234567890123456")
	assert.NoError(t, store.Create(ctx, req))

	got, err := store.GetByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, "John Doe", got.ApplicantName)
	assert.Equal(t, domain.RequestStatusPending, got.Status)
	assert.Len(t, got.Documents, 1)
	assert.Equal(t, "rahasia", got.Documents[0].Password)
	assert.Empty(t, got.Notes)
	assert.Empty(t, got.ProcessedBy)
	assert.Nil(t, got.ProcessedAt)
}

func TestStore_GetByID_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ReturnedCopiesAreDetached(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, newRequest("1", "John Doe", "1234567890123456")))

	got, err := store.GetByID(ctx, "1")
	assert.NoError(t, err)
	got.Status = domain.RequestStatusApproved
	got.Documents[0].Name = "tampered"

	again, err := store.GetByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, again.Status)
	assert.Equal(t, "KTP.pdf", again.Documents[0].Name)
}

func TestStore_ListAll_PreservesSubmissionOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		assert.NoError(t, store.Create(ctx, newRequest(id, "John Doe", "1234567890123456")))
	}

	reqs, err := store.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, reqs, 3)
	assert.Equal(t, "a", reqs[0].ID)
	assert.Equal(t, "b", reqs[1].ID)
	assert.Equal(t, "c", reqs[2].ID)
}

func TestStore_ListByApplicant(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, newRequest("1", "Jane", "1111222233334444")))
	assert.NoError(t, store.Create(ctx, newRequest("2", "John", "5555666677778888")))
	assert.NoError(t, store.Create(ctx, newRequest("3", "Jane", "1111222233334444")))

	reqs, err := store.ListByApplicant(ctx, "Jane")
	assert.NoError(t, err)
	assert.Len(t, reqs, 2)
	assert.Equal(t, "1", reqs[0].ID)
	assert.Equal(t, "3", reqs[1].ID)

	// Exact, case-sensitive match
	reqs, err = store.ListByApplicant(ctx, "jane")
	assert.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestStore_UpdateDecision(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now()

	assert.NoError(t, store.Create(ctx, newRequest("1", "John Doe", "1234567890123456")))

	t.Run("Success", func(t *testing.T) {
		err := store.UpdateDecision(ctx, "1", domain.RequestStatusApproved, "ok", "Administrator", now)
		assert.NoError(t, err)

		got, err := store.GetByID(ctx, "1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusApproved, got.Status)
		assert.Equal(t, "ok", got.Notes)
		assert.Equal(t, "Administrator", got.ProcessedBy)
		assert.NotNil(t, got.ProcessedAt)
		assert.True(t, got.ProcessedAt.Equal(now))
	})

	t.Run("SecondDecisionFails", func(t *testing.T) {
		err := store.UpdateDecision(ctx, "1", domain.RequestStatusRejected, "changed my mind", "Administrator", now)
		assert.ErrorIs(t, err, domain.ErrNotPending)

		// Fields unchanged
		got, err := store.GetByID(ctx, "1")
		assert.NoError(t, err)
		assert.Equal(t, domain.RequestStatusApproved, got.Status)
		assert.Equal(t, "ok", got.Notes)
	})

	t.Run("UnknownID", func(t *testing.T) {
		err := store.UpdateDecision(ctx, "missing", domain.RequestStatusApproved, "ok", "Administrator", now)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStore_CountByStatus(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, newRequest("1", "Jane", "1111222233334444")))
	assert.NoError(t, store.Create(ctx, newRequest("2", "John", "5555666677778888")))
	assert.NoError(t, store.UpdateDecision(ctx, "2", domain.RequestStatusRejected, "dokumen tidak lengkap", "Administrator", time.Now()))

	counts, err := store.CountByStatus(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, counts[domain.RequestStatusPending])
	assert.Equal(t, 0, counts[domain.RequestStatusApproved])
	assert.Equal(t, 1, counts[domain.RequestStatusRejected])
}

func TestStore_ListPendingOlderThan(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	old := newRequest("old", "Jane", "1111222233334444")
	old.SubmittedAt = time.Now().Add(-5 * 24 * time.Hour)
	fresh := newRequest("fresh", "Jane", "1111222233334444")
	decided := newRequest("decided", "Jane", "1111222233334444")
	decided.SubmittedAt = time.Now().Add(-5 * 24 * time.Hour)

	assert.NoError(t, store.Create(ctx, old))
	assert.NoError(t, store.Create(ctx, fresh))
	assert.NoError(t, store.Create(ctx, decided))
	assert.NoError(t, store.UpdateDecision(ctx, "decided", domain.RequestStatusApproved, "ok", "Administrator", time.Now()))

	stale, err := store.ListPendingOlderThan(ctx, time.Now().Add(-3*24*time.Hour))
	assert.NoError(t, err)
	assert.Len(t, stale, 1)
	assert.Equal(t, "old", stale[0].ID)
}
