package service

import (
	"context"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/mailer"
	"mentoria-be/pkg/events"
)

// publishEvent is best effort: the write it reports on is already committed.
func publishEvent(ctx context.Context, pub events.Publisher, log logger.ILogger, module, eventType string, data map[string]interface{}) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, events.New(eventType, data)); err != nil {
		log.Warn(module, "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func enqueueEmail(ctx context.Context, queue EmailQueue, log logger.ILogger, module string, email mailer.Email) {
	if queue == nil || email.To == "" {
		return
	}
	if err := queue.Enqueue(ctx, email); err != nil {
		log.Warn(module, "Failed to enqueue email", map[string]interface{}{
			"to":      email.To,
			"subject": email.Subject,
			"error":   err.Error(),
		})
	}
}

func meetingEmailDetails(d *entity.MeetingDetail) mailer.MeetingDetails {
	return mailer.MeetingDetails{
		RecipientName: d.MenteeName,
		MentorName:    d.MentorName,
		PlanTitle:     d.PlanTitle,
		Date:          d.Slot.Date.Format(entity.DateLayout),
		StartTime:     d.Slot.StartTime.Format(entity.TimeLayout),
		EndTime:       d.Slot.EndTime.Format(entity.TimeLayout),
		Location:      d.Location,
		Status:        string(d.Status),
	}
}
