package contracts

import (
	"context"

	"clinicare-service/internal/pkg/dto/requests"
)

type MailQueueService interface {
	// PublishEmailJob enqueues a job for asynchronous delivery. Callers treat
	// a publish failure as a degraded secondary effect: log it, never fail
	// the primary operation.
	PublishEmailJob(ctx context.Context, job *requests.EmailJob) error
}

type MailerService interface {
	SendEmailJob(job *requests.EmailJob) error
}
