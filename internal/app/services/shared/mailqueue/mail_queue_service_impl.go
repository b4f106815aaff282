package mailqueue

import (
	"context"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
)

type mailQueueService struct {
	channel *amqp.Channel
	queue   string
}

// NewMailQueueService declares the durable mail queue and returns a publisher
// bound to it.
func NewMailQueueService(rabbitMQConnection *amqp.Connection, queueName string) (contracts.MailQueueService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &mailQueueService{
		channel: channel,
		queue:   queueName,
	}, nil
}

func (s *mailQueueService) PublishEmailJob(ctx context.Context, job *requests.EmailJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queue)
	}
	return nil
}

// ConsumeEmailJobs drains the mail queue and hands every decoded job to the
// mailer. It blocks until the context is cancelled, so callers run it on its
// own goroutine. Undecodable or undeliverable messages are rejected without
// requeue to keep a poison message from wedging the queue.
func ConsumeEmailJobs(ctx context.Context, rabbitMQConnection *amqp.Connection, queueName string, mailer contracts.MailerService) error {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return err
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	deliveries, err := channel.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			var job requests.EmailJob
			if err := json.Unmarshal(delivery.Body, &job); err != nil {
				_ = delivery.Nack(false, false)
				continue
			}
			if err := mailer.SendEmailJob(&job); err != nil {
				_ = delivery.Nack(false, false)
				continue
			}
			_ = delivery.Ack(false)
		}
	}
}
