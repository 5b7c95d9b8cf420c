package notify

import (
	"context"
	"errors"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"etats/internal/config"
	"etats/internal/models"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailNotifier struct {
	sender mailSender
	from   string
}

func NewEmailNotifier(cfg config.EmailConfig) *EmailNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return &EmailNotifier{sender: dialer, from: cfg.FromEmail}
}

func (n *EmailNotifier) TaskAssigned(_ context.Context, task TaskNotice, recipients []models.Employee) error {
	var msgs []*gomail.Message
	for _, r := range recipients {
		if r.Email == "" {
			continue
		}
		m := gomail.NewMessage()
		m.SetHeader("From", n.from)
		m.SetHeader("To", r.Email)
		m.SetHeader("Subject", task.headline()+": "+task.Title)
		m.SetBody("text/html", fmt.Sprintf(`
			<p>Hello %s,</p>
			<p>You are assigned to <strong>%s</strong>.</p>
			<ul>
				<li>Priority: %s</li>
				<li>Due: %s</li>
			</ul>`,
			html.EscapeString(r.Name), html.EscapeString(task.Title),
			html.EscapeString(task.Priority), html.EscapeString(task.due()),
		))
		msgs = append(msgs, m)
	}
	if len(msgs) == 0 {
		return nil
	}
	if err := n.sender.DialAndSend(msgs...); err != nil {
		return fmt.Errorf("failed to send assignment email: %w", err)
	}
	return nil
}

func (n *EmailNotifier) EmployeeCreated(_ context.Context, e models.Employee) error {
	if e.Email == "" {
		return errors.New("employee has no email")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", e.Email)
	m.SetHeader("Subject", "Your ETATS account")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>An account with id <strong>%s</strong> was created for you.</p>
		<p>Ask your manager for your initial password.</p>`,
		html.EscapeString(e.Name), html.EscapeString(e.EmployeeID),
	))
	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}
