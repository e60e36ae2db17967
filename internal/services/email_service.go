package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/avasquez/rentium-api/internal/config"
	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/pkg/logger"
)

//go:embed templates/email/*.html
var emailTemplates embed.FS

// EmailService sends transactional email through Resend
type EmailService struct {
	config       *config.Config
	resendClient *resend.Client
}

func NewEmailService(cfg *config.Config) *EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &EmailService{
		config:       cfg,
		resendClient: client,
	}
}

func (s *EmailService) enabled() bool {
	return s.config.ResendAPIKey != "" && s.config.FromEmail != ""
}

func (s *EmailService) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/email/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func (s *EmailService) send(ctx context.Context, to, subject, body string) error {
	if !s.enabled() {
		logger.Warn("Email disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	_, err := s.resendClient.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// SendRecoveryCode emails a password reset code
func (s *EmailService) SendRecoveryCode(ctx context.Context, user *models.User, code string) error {
	data := struct {
		Name    string
		Code    string
		Minutes int
	}{
		Name:    user.FullName,
		Code:    code,
		Minutes: 15,
	}

	body, err := s.renderTemplate("reset_code.html", data)
	if err != nil {
		return err
	}

	return s.send(ctx, user.Email, "Password recovery code", body)
}

// SendArrearsNotice emails a manager the leases in arrears for the current month
func (s *EmailService) SendArrearsNotice(ctx context.Context, manager *models.User, entries []models.ArrearsEntry) error {
	if len(entries) == 0 {
		return nil
	}

	data := struct {
		Name    string
		Count   int
		Month   string
		Entries []models.ArrearsEntry
	}{
		Name:    manager.FullName,
		Count:   len(entries),
		Month:   time.Now().Format("January 2006"),
		Entries: entries,
	}

	body, err := s.renderTemplate("arrears_notice.html", data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Arrears notice: %d lease(s) unpaid this month", len(entries))
	return s.send(ctx, manager.Email, subject, body)
}
