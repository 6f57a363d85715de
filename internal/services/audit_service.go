package services

import (
	"errors"
	"log/slog"

	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"

	"github.com/google/uuid"
)

var ErrInvalidUserID = errors.New("invalid user ID")

// AuditService records the audit trail. Every Log* method is best-effort:
// the write happens on a detached goroutine and a failure is logged, never
// returned, so auditing cannot fail the operation it describes.
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

// LogLogin records a successful login
func (s *AuditService) LogLogin(userID uuid.UUID, ipAddress, userAgent string) {
	s.record(&models.AuditLog{
		UserID:    &userID,
		Action:    models.AuditActionLogin,
		Resource:  "auth",
		IPAddress: ipAddress,
		UserAgent: userAgent,
	})
}

// LogFailedLogin records a failed login attempt. The user id is left unset
// so the entry never confirms whether the email exists.
func (s *AuditService) LogFailedLogin(email, ipAddress, userAgent, reason string) {
	entry := &models.AuditLog{
		Action:    models.AuditActionFailedLogin,
		Resource:  "auth",
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	entry.SetMetadata("email", email)
	entry.SetMetadata("reason", reason)
	s.record(entry)
}

// LogRegister records a new registration
func (s *AuditService) LogRegister(userID uuid.UUID, ipAddress, userAgent string) {
	s.record(&models.AuditLog{
		UserID:    &userID,
		Action:    models.AuditActionRegister,
		Resource:  "auth",
		IPAddress: ipAddress,
		UserAgent: userAgent,
	})
}

// LogExpenseCreated records an expense creation
func (s *AuditService) LogExpenseCreated(userID, expenseID uuid.UUID, ipAddress, userAgent string) {
	s.record(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionExpenseCreated,
		Resource:   "expense",
		ResourceID: expenseID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

// LogExpenseUpdated records an expense update with the touched fields
func (s *AuditService) LogExpenseUpdated(userID, expenseID uuid.UUID, ipAddress, userAgent string, changedFields []string) {
	entry := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionExpenseUpdated,
		Resource:   "expense",
		ResourceID: expenseID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	entry.SetMetadata("changed_fields", changedFields)
	s.record(entry)
}

// LogExpenseDeleted records an expense deletion
func (s *AuditService) LogExpenseDeleted(userID, expenseID uuid.UUID, ipAddress, userAgent string) {
	s.record(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionExpenseDeleted,
		Resource:   "expense",
		ResourceID: expenseID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

// GetUserActivity returns a user's audit trail, newest first
func (s *AuditService) GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}
	return s.repo.GetByUserID(userID, offset, limit)
}

func (s *AuditService) record(entry *models.AuditLog) {
	go func() {
		if err := s.repo.Create(entry); err != nil {
			s.logger.Error("failed to write audit log",
				"action", entry.Action, "resource", entry.Resource, "error", err)
		}
	}()
}
