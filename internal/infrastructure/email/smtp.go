package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	subscriptionUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	"github.com/doramashorts/backend/internal/shared/biztime"
)

type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromAddress  string
	FromName     string
	AdminAddress string
	// BaseURL prefixes the admin review link. Empty omits the link.
	BaseURL string
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPAdminNotifier mails the operator when a manual payment request arrives.
type SMTPAdminNotifier struct {
	config SMTPConfig
	dialer sender
}

func NewSMTPAdminNotifier(config SMTPConfig) *SMTPAdminNotifier {
	return &SMTPAdminNotifier{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (n *SMTPAdminNotifier) NotifyPendingSubscription(ctx context.Context, notice subscriptionUsecases.PendingSubscriptionNotice) error {
	if n.config.AdminAddress == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	who := notice.UserEmail
	if who == "" {
		who = "unknown user"
	}
	submitted := biztime.FormatDateTime(notice.CreatedAt)

	subject := fmt.Sprintf("New premium request from %s", who)

	plainBody := fmt.Sprintf(`A new premium subscription request is waiting for review.

Request:   %s
User:      %s
WhatsApp:  %s
Proof:     %s
Submitted: %s
`, notice.SubscriptionSID, who, orDash(notice.WhatsAppNumber), orDash(notice.PaymentProofURL), submitted)

	link := ""
	if n.config.BaseURL != "" {
		link = fmt.Sprintf(`<p><a href="%s/admin/subscriptions">Open pending requests</a></p>`, html.EscapeString(n.config.BaseURL))
	}
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New premium request</h2>
			<table>
				<tr><td>Request</td><td>%s</td></tr>
				<tr><td>User</td><td>%s</td></tr>
				<tr><td>WhatsApp</td><td>%s</td></tr>
				<tr><td>Proof</td><td>%s</td></tr>
				<tr><td>Submitted</td><td>%s</td></tr>
			</table>
			%s
		</body>
		</html>
	`,
		html.EscapeString(notice.SubscriptionSID),
		html.EscapeString(who),
		html.EscapeString(orDash(notice.WhatsAppNumber)),
		html.EscapeString(orDash(notice.PaymentProofURL)),
		submitted,
		link,
	)

	return n.send(n.config.AdminAddress, subject, htmlBody, plainBody)
}

func (n *SMTPAdminNotifier) send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.config.FromAddress, n.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
