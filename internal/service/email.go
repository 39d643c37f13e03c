package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"verdata-backend/internal/domain"
	"verdata-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService builds the SendGrid-backed mailer. An empty API key
// returns the noop mailer instead so demo deployments run without outbound
// email.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	if apiKey == "" {
		logger.Warn("no SendGrid API key configured, outbound email disabled")
		return &noopEmailService{}
	}
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendSubmissionReceipt(ctx context.Context, email, name string, req *domain.VerificationRequest) error {
	subject := "Permohonan Verifikasi Data Diterima"
	body := fmt.Sprintf(
		"Halo %s,\n\nPermohonan %s Anda telah kami terima dengan nomor %s dan sedang menunggu proses.\n\nTerima kasih,\nLayanan Verifikasi Data Penduduk",
		name, req.RequestType.Label(), req.ID)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendDecisionNotification(ctx context.Context, email, name string, req *domain.VerificationRequest) error {
	verdict := "disetujui"
	subject := "Permohonan Verifikasi Data Disetujui"
	if req.Status == domain.RequestStatusRejected {
		verdict = "ditolak"
		subject = "Permohonan Verifikasi Data Ditolak"
	}
	body := fmt.Sprintf(
		"Halo %s,\n\nPermohonan %s Anda dengan nomor %s telah %s oleh %s.\n\nCatatan: %s\n\nTerima kasih,\nLayanan Verifikasi Data Penduduk",
		name, req.RequestType.Label(), req.ID, verdict, req.ProcessedBy, req.Notes)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendPendingReminder(ctx context.Context, adminEmail string, pending []domain.VerificationRequest) error {
	subject := fmt.Sprintf("%d permohonan verifikasi menunggu proses", len(pending))
	var b strings.Builder
	b.WriteString("Permohonan berikut masih menunggu keputusan:\n\n")
	for _, req := range pending {
		fmt.Fprintf(&b, "- %s (%s), diajukan %s oleh %s\n",
			req.ID, req.RequestType.Label(), req.SubmittedAt.Format("2006-01-02"), req.ApplicantName)
	}
	return s.send(adminEmail, "Administrator", subject, b.String())
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// noopEmailService drops all mail. Used when no API key is configured.
type noopEmailService struct{}

func (n *noopEmailService) SendSubmissionReceipt(ctx context.Context, email, name string, req *domain.VerificationRequest) error {
	return nil
}

func (n *noopEmailService) SendDecisionNotification(ctx context.Context, email, name string, req *domain.VerificationRequest) error {
	return nil
}

func (n *noopEmailService) SendPendingReminder(ctx context.Context, adminEmail string, pending []domain.VerificationRequest) error {
	return nil
}
