package requests

type SendNotification struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Content     string   `json:"content" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=schedule appointment payment system"`
	CreatedBy   string   `json:"created_by" validate:"omitempty,uuid"`
	IsGlobal    bool     `json:"is_global"`
	RoleNames   []string `json:"role_names" validate:"omitempty,dive,oneof=admin doctor nurse patient"`
	ReceiverIDs []string `json:"receiver_ids" validate:"omitempty,dive,uuid"`

	// EmailTemplate and EmailValues are set by internal callers that want a
	// richer mail than the generic notification template. Never accepted from
	// the API body.
	EmailTemplate string            `json:"-"`
	EmailValues   map[string]string `json:"-"`
}
