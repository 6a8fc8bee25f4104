package service

import (
	"errors"
	"fmt"
	"time"

	"league-portal-backend/internal/database/models"
	apperrors "league-portal-backend/internal/errors"
	"league-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService delivers and manages user notifications. It also acts
// as the escalation notifier for the reconciliation engine.
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	UserID    uuid.UUID               `json:"user_id"`
	MatchID   *uuid.UUID              `json:"match_id,omitempty"`
	Type      models.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message,omitempty"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt string                  `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// GetByUser retrieves notifications for a user with pagination
func (s *NotificationService) GetByUser(userID uuid.UUID, page, pageSize int) (*NotificationListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	notifications, total, err := s.repo.GetByUserID(userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *toNotificationResponse(&notifications[i])
	}

	return &NotificationListResponse{Notifications: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

// MarkRead marks a notification as read
func (s *NotificationService) MarkRead(id uuid.UUID) error {
	if err := s.repo.MarkRead(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// Delete deletes a notification
func (s *NotificationService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

// NotifyConflict delivers a score-conflict notification to a league manager
func (s *NotificationService) NotifyConflict(managerUserID, matchID uuid.UUID, payload *ConflictPayload) error {
	notification := &models.Notification{
		UserID:  managerUserID,
		MatchID: &matchID,
		Type:    models.NotificationTypeMatchConflict,
		Title:   "Match result conflict requires review",
		Message: fmt.Sprintf("%s reported %d-%d but %s reported %d-%d",
			payload.HomeSubmission.TeamName, payload.HomeSubmission.HomeScore, payload.HomeSubmission.AwayScore,
			payload.AwaySubmission.TeamName, payload.AwaySubmission.HomeScore, payload.AwaySubmission.AwayScore),
		IsRead: false,
	}
	if err := s.repo.Create(notification); err != nil {
		return fmt.Errorf("failed to create conflict notification: %w", err)
	}
	return nil
}

// NotifyMatchFinalized tells a submitter their reported result is now official
func (s *NotificationService) NotifyMatchFinalized(userID, matchID uuid.UUID, homeScore, awayScore int) error {
	notification := &models.Notification{
		UserID:  userID,
		MatchID: &matchID,
		Type:    models.NotificationTypeMatchFinalized,
		Title:   "Match result finalized",
		Message: fmt.Sprintf("The match has been finalized with a score of %d-%d", homeScore, awayScore),
		IsRead:  false,
	}
	if err := s.repo.Create(notification); err != nil {
		return fmt.Errorf("failed to create finalization notification: %w", err)
	}
	return nil
}

func toNotificationResponse(notification *models.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		MatchID:   notification.MatchID,
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}
}
