package repositories

import (
	"testing"
	"time"

	"expense-tracker-api/internal/database"
	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_Create() {
	user := database.CreateTestUser(s.T(), s.db, "audit@example.com")

	log := &models.AuditLog{
		UserID:     &user.ID,
		Action:     models.AuditActionLogin,
		Resource:   "auth",
		ResourceID: user.ID.String(),
		IPAddress:  "192.168.1.1",
		UserAgent:  "Mozilla/5.0",
	}

	err := s.repo.Create(log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_CreateWithoutUserID() {
	// Failed logins are recorded before any user is resolved
	log := &models.AuditLog{
		UserID:     nil,
		Action:     models.AuditActionFailedLogin,
		Resource:   "auth",
		ResourceID: "",
		IPAddress:  "192.168.1.1",
		UserAgent:  "Mozilla/5.0",
	}
	log.SetMetadata("email", "unknown@example.com")
	log.SetMetadata("reason", "user not found")

	err := s.repo.Create(log)
	s.NoError(err)
	s.NotEqual(uuid.Nil, log.ID)
	s.Nil(log.UserID)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_MetadataRoundTrip() {
	user := database.CreateTestUser(s.T(), s.db, "audit@example.com")

	log := &models.AuditLog{
		UserID:     &user.ID,
		Action:     models.AuditActionExpenseUpdated,
		Resource:   "expense",
		ResourceID: uuid.New().String(),
		IPAddress:  "192.168.1.1",
	}
	log.SetMetadata("changed_fields", []interface{}{"title", "amount"})

	s.Require().NoError(s.repo.Create(log))

	logs, total, err := s.repo.GetByUserID(user.ID, 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(logs, 1)

	fields := logs[0].GetMetadata("changed_fields", nil)
	s.Equal([]interface{}{"title", "amount"}, fields)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_GetByUserID() {
	user := database.CreateTestUser(s.T(), s.db, "audit@example.com")
	otherUser := database.CreateTestUser(s.T(), s.db, "other@example.com")

	actions := []string{
		models.AuditActionLogin,
		models.AuditActionExpenseCreated,
		models.AuditActionExpenseDeleted,
	}
	for _, action := range actions {
		log := &models.AuditLog{
			UserID:     &user.ID,
			Action:     action,
			Resource:   "expense",
			ResourceID: uuid.New().String(),
			IPAddress:  "192.168.1.1",
			UserAgent:  "Mozilla/5.0",
		}
		s.Require().NoError(s.repo.Create(log))
	}

	otherLog := &models.AuditLog{
		UserID:     &otherUser.ID,
		Action:     models.AuditActionLogin,
		Resource:   "auth",
		ResourceID: otherUser.ID.String(),
		IPAddress:  "192.168.1.2",
		UserAgent:  "Chrome",
	}
	s.Require().NoError(s.repo.Create(otherLog))

	logs, total, err := s.repo.GetByUserID(user.ID, 0, 10)
	s.NoError(err)
	s.Len(logs, 3)
	s.Equal(int64(3), total)

	// Verify all logs belong to the correct user
	for _, log := range logs {
		s.Require().NotNil(log.UserID)
		s.Equal(user.ID, *log.UserID)
	}
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_GetByUserID_Pagination() {
	user := database.CreateTestUser(s.T(), s.db, "audit@example.com")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		log := &models.AuditLog{
			UserID:     &user.ID,
			Action:     models.AuditActionExpenseCreated,
			Resource:   "expense",
			ResourceID: uuid.New().String(),
			IPAddress:  "192.168.1.1",
			UserAgent:  "Mozilla/5.0",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.repo.Create(log))
	}

	logs, total, err := s.repo.GetByUserID(user.ID, 0, 2)
	s.NoError(err)
	s.Len(logs, 2)
	s.Equal(int64(5), total)

	logs, total, err = s.repo.GetByUserID(user.ID, 2, 2)
	s.NoError(err)
	s.Len(logs, 2)
	s.Equal(int64(5), total)

	logs, total, err = s.repo.GetByUserID(user.ID, 4, 2)
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(int64(5), total)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_GetByUserID_NewestFirst() {
	user := database.CreateTestUser(s.T(), s.db, "audit@example.com")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		log := &models.AuditLog{
			UserID:     &user.ID,
			Action:     models.AuditActionExpenseCreated,
			Resource:   "expense",
			ResourceID: uuid.New().String(),
			IPAddress:  "192.168.1.1",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.repo.Create(log))
	}

	logs, _, err := s.repo.GetByUserID(user.ID, 0, 10)
	s.NoError(err)
	s.Require().Len(logs, 3)

	for i := 1; i < len(logs); i++ {
		s.False(logs[i-1].CreatedAt.Before(logs[i].CreatedAt))
	}
}
