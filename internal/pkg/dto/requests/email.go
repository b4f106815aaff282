package requests

// EmailJob is the message published to the mail queue. The consumer renders
// the named template with the values and delivers through SMTP.
type EmailJob struct {
	To           []string          `json:"to"`
	Subject      string            `json:"subject"`
	TemplateName string            `json:"template_name"`
	Values       map[string]string `json:"values"`
}
