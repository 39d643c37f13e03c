package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// IsTerminal reports whether a request in this status can no longer change.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

type RequestType string

const (
	RequestTypeKTP          RequestType = "verifikasi_ktp"
	RequestTypeKK           RequestType = "verifikasi_kk"
	RequestTypeAktaLahir    RequestType = "verifikasi_akta_lahir"
	RequestTypeAktaNikah    RequestType = "verifikasi_akta_nikah"
	RequestTypeDataLengkap  RequestType = "verifikasi_data_lengkap"
)

// RequestTypeLabels maps each request type to its display label.
var RequestTypeLabels = map[RequestType]string{
	RequestTypeKTP:         "Verifikasi KTP",
	RequestTypeKK:          "Verifikasi Kartu Keluarga",
	RequestTypeAktaLahir:   "Verifikasi Akta Kelahiran",
	RequestTypeAktaNikah:   "Verifikasi Akta Pernikahan",
	RequestTypeDataLengkap: "Verifikasi Data Lengkap",
}

// ValidRequestType reports whether t is one of the supported categories.
func ValidRequestType(t RequestType) bool {
	_, ok := RequestTypeLabels[t]
	return ok
}

// Label returns the display label for the request type, falling back to the
// raw value for unknown types.
func (t RequestType) Label() string {
	if label, ok := RequestTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

type MediaType string

const (
	MediaTypePDF   MediaType = "application/pdf"
	MediaTypeJPEG  MediaType = "image/jpeg"
	MediaTypeOther MediaType = "other"
)

// MediaTypeFromMIME normalizes a submitted MIME type into the recognized set.
func MediaTypeFromMIME(mime string) MediaType {
	switch mime {
	case "application/pdf":
		return MediaTypePDF
	case "image/jpeg", "image/jpg":
		return MediaTypeJPEG
	default:
		return MediaTypeOther
	}
}

// Document is an attachment reference owned by its parent request. Documents
// are fixed at submission time; no add/remove path exists afterward.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MediaType  MediaType `json:"media_type"`
	Password   string    `json:"password,omitempty"` // only meaningful for protected PDFs
	StorageKey string    `json:"storage_key,omitempty"`
}

// VerificationRequest is a citizen data verification request. Identity
// fields, documents and submitted_at are immutable after creation; the only
// mutation is the single pending -> approved/rejected decision, which sets
// notes, processed_by and processed_at together.
type VerificationRequest struct {
	ID            string        `json:"id"`
	ApplicantName string        `json:"applicant_name"`
	NIK           string        `json:"nik"`
	PhoneNumber   string        `json:"phone_number"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	RequestType   RequestType   `json:"request_type"`
	Description   string        `json:"description"`
	Documents     []Document    `json:"documents"`
	Status        RequestStatus `json:"status"`
	SubmittedAt   time.Time     `json:"submitted_at"`
	Notes         string        `json:"notes,omitempty"`
	ProcessedBy   string        `json:"processed_by,omitempty"`
	ProcessedAt   *time.Time    `json:"processed_at,omitempty"`
}
