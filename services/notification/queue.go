package notification

import (
	"context"
	"fmt"

	"hireflow/models"
	"hireflow/services/tasks"

	"github.com/hibiken/asynq"
)

// QueueNotificationService enqueues booking notifications for the async
// worker instead of delivering inline. An enqueue failure is reported to the
// caller as a degraded-success condition; the booking itself stands.
type QueueNotificationService struct {
	Client *asynq.Client
}

func NewQueueNotificationService(client *asynq.Client) *QueueNotificationService {
	return &QueueNotificationService{Client: client}
}

func (s *QueueNotificationService) SendBookingNotification(ctx context.Context, booking *models.InterviewBooking) error {
	task, err := tasks.NewBookingNotifyTask(PayloadFor(booking))
	if err != nil {
		return fmt.Errorf("failed to build notify task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue booking notification: %w", err)
	}
	return nil
}
