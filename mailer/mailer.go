package mailer

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/Kavinduranmal/Noirrage-sub000/models"
)

// Mailer sends order lifecycle mail. Sends are best-effort: the order flow
// never fails a request because a mail could not go out.
type Mailer interface {
	SendOrderConfirmation(order models.Order) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds the production mailer from SMTP credentials.
func NewSMTPMailer(host string, port int, user, password, from string) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

const confirmationTemplate = `Hi,

Thank you for shopping with Noirrage! Your order {{.ID}} has been placed.

Items:
{{range .Items}}  - {{.Product.Name}} x{{.Qty}} ({{.Size}}, {{.Color}})
{{end}}
Total: Rs. {{printf "%.2f" .TotalPrice}}

We will email you again once your order ships to:
{{.ShippingDetails.Address}}

— Noirrage
`

var confirmationTmpl = template.Must(template.New("orderConfirmation").Parse(confirmationTemplate))

func (m *smtpMailer) SendOrderConfirmation(order models.Order) error {
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, order); err != nil {
		return fmt.Errorf("render confirmation mail: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", order.ShippingDetails.Email)
	msg.SetHeader("Subject", "Noirrage — order confirmation")
	msg.SetBody("text/plain", body.String())

	return m.dialer.DialAndSend(msg)
}
