package service

import (
	"context"
	"encoding/json"
	"fmt"

	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EmailQueue hands rendered emails to the background dispatcher.
type EmailQueue interface {
	Enqueue(ctx context.Context, email mailer.Email) error
}

type emailQueue struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewEmailQueue(pubSub *gochannel.GoChannel, topicName string) EmailQueue {
	return &emailQueue{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (q *emailQueue) Enqueue(ctx context.Context, email mailer.Email) error {
	payload, err := json.Marshal(email)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return q.pubSub.Publish(q.topicName, msg)
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	logger       logger.ILogger
}

// NewConsumerService builds the worker that drains the email topic through SMTP.
func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		logger:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var email mailer.Email
	if err := json.Unmarshal(msg.Payload, &email); err != nil {
		cs.logger.Error("EMAIL", "Dropping malformed email message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Redelivery cannot fix a bad payload.
		msg.Ack()
		return
	}

	if err := cs.emailService.Send(email.To, email.Subject, email.Body); err != nil {
		// SMTP failures are not retried; a Nack on gochannel would spin on a dead server.
		cs.logger.Error("EMAIL", "Failed to send email", map[string]interface{}{
			"to":      email.To,
			"subject": email.Subject,
			"error":   err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("EMAIL", fmt.Sprintf("Sent %q", email.Subject), map[string]interface{}{"to": email.To})
	msg.Ack()
}
