package services

import (
	"context"
	"fmt"

	"github.com/avasquez/rentium-api/internal/models"
	"github.com/avasquez/rentium-api/internal/repository"
	"github.com/avasquez/rentium-api/pkg/logger"
)

// NotificationService drives the scheduled email notices
type NotificationService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	reportSvc        *ReportService
	emailSvc         *EmailService
}

// NewNotificationService creates a new notification service
func NewNotificationService(userRepo repository.UserRepository, rtRepo repository.RefreshTokenRepository, reportSvc *ReportService, emailSvc *EmailService) *NotificationService {
	return &NotificationService{
		userRepo:         userRepo,
		refreshTokenRepo: rtRepo,
		reportSvc:        reportSvc,
		emailSvc:         emailSvc,
	}
}

// SendArrearsNotices emails each manager the list of their active leases
// with no payment recorded for the current month. Managers with no arrears
// are skipped.
func (s *NotificationService) SendArrearsNotices(ctx context.Context) error {
	managers, err := s.userRepo.FindByRole(ctx, models.RoleManager)
	if err != nil {
		return fmt.Errorf("failed to load managers: %w", err)
	}

	for i := range managers {
		manager := &managers[i]
		caller := Caller{ID: manager.ID, Role: manager.Role}

		entries, err := s.reportSvc.GetArrearsReport(ctx, caller, nil)
		if err != nil {
			logger.Error(fmt.Sprintf("[Notifications] Arrears report failed for manager %d: %v", manager.ID, err))
			continue
		}
		if len(entries) == 0 {
			continue
		}

		if err := s.emailSvc.SendArrearsNotice(ctx, manager, entries); err != nil {
			logger.Error(fmt.Sprintf("[Notifications] Arrears notice failed for manager %d: %v", manager.ID, err))
		}
	}
	return nil
}

// CleanupExpiredTokens removes refresh tokens past their expiry
func (s *NotificationService) CleanupExpiredTokens(ctx context.Context) error {
	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	if deleted > 0 {
		logger.Info(fmt.Sprintf("[Notifications] Removed %d expired refresh tokens", deleted))
	}
	return nil
}
