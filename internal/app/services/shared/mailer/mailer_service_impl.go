package mailer

import (
	"fmt"
	"net/smtp"

	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/app/drivers/mailer"
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/requests"
	"clinicare-service/internal/pkg/exceptions"
	"clinicare-service/internal/pkg/utils"
)

type mailerService struct {
	client *mailer.SMTPClient
}

func NewMailerService(client *mailer.SMTPClient) contracts.MailerService {
	return &mailerService{client: client}
}

func (s *mailerService) SendEmailJob(job *requests.EmailJob) error {
	htmlBody, err := utils.RenderEmailTemplate(job.TemplateName, job.Values)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.client.Host, s.client.Port)
	for _, recipient := range job.To {
		msg := []byte(fmt.Sprintf(constvars.EmailSendBasicFormat, recipient, job.Subject, htmlBody))
		if err := smtp.SendMail(addr, s.client.Auth, s.client.EmailSender, []string{recipient}, msg); err != nil {
			return exceptions.ErrSMTPSendEmail(err, s.client.Host)
		}
	}
	return nil
}
