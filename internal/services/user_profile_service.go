package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expense-tracker-api/internal/cache"
	"expense-tracker-api/internal/config"
	"expense-tracker-api/internal/dto"
	"expense-tracker-api/internal/repositories"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

const profileKeyPrefix = "user:"

// UserProfileService serves profile reads through the cache using the same
// read-through discipline as the expense views: adapter errors degrade to a
// database read, a populate failure only costs the next request a miss.
type UserProfileService struct {
	userRepo   repositories.UserRepositoryInterface
	cache      cache.Cache
	metrics    MetricsRecorderInterface
	profileTTL time.Duration
	logger     *slog.Logger
}

// NewUserProfileService creates a new user profile service
func NewUserProfileService(
	userRepo repositories.UserRepositoryInterface,
	cacheStore cache.Cache,
	metrics MetricsRecorderInterface,
	cacheConfig *config.CacheConfig,
	logger *slog.Logger,
) UserProfileServiceInterface {
	return &UserProfileService{
		userRepo:   userRepo,
		cache:      cacheStore,
		metrics:    metrics,
		profileTTL: cacheConfig.UserProfileTTL,
		logger:     logger,
	}
}

// GetProfile returns the user's profile, cached under user:<userId>
func (s *UserProfileService) GetProfile(userID uuid.UUID) (*dto.UserResponse, error) {
	key := profileKeyPrefix + userID.String()

	var cached dto.UserResponse
	found, err := s.cache.GetJSON(key, &cached)
	if err != nil {
		s.logger.Warn("profile cache read failed, falling back to database",
			"user_id", userID, "error", err)
	} else if found {
		s.metrics.RecordCacheHit("profile")
		return &cached, nil
	}
	s.metrics.RecordCacheMiss("profile")

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	response := toUserResponse(user)
	if err := s.cache.SetJSON(key, &response, s.profileTTL); err != nil {
		s.logger.Warn("profile cache write failed", "user_id", userID, "error", err)
	}

	return &response, nil
}

// InvalidateProfile drops the cached profile after a profile-affecting write
func (s *UserProfileService) InvalidateProfile(userID uuid.UUID) {
	key := profileKeyPrefix + userID.String()
	if err := s.cache.Delete(key); err != nil {
		s.logger.Warn("profile cache invalidation failed", "user_id", userID, "error", err)
	}
	s.metrics.RecordCacheInvalidation("profile")
}
