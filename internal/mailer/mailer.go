package mailer

import "embed"

const (
	FROM_NAME = "PlacePick"
	MAX_RETRY = 3
)

type MailTemplateFile string

const (
	TemplateAccountDeleted MailTemplateFile = "account_deleted.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile MailTemplateFile, toUsername, toEmail string, data any) (int, error)
}

// AccountDeletedData feeds the withdrawal confirmation template.
type AccountDeletedData struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
