package notify

import (
	"context"
	"errors"
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"etats/internal/models"
)

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier messages employees that have a linked chat id.
type TelegramNotifier struct {
	bot botSender
}

// NewTelegramNotifier authorizes the bot token against the Telegram API.
func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &TelegramNotifier{bot: bot}, nil
}

func (n *TelegramNotifier) send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	_, err := n.bot.Send(msg)
	return err
}

func (n *TelegramNotifier) TaskAssigned(_ context.Context, task TaskNotice, recipients []models.Employee) error {
	text := "📌 " + html.EscapeString(task.headline()) + "\n" +
		"• <b>" + html.EscapeString(task.Title) + "</b>\n" +
		"• Priority: <code>" + html.EscapeString(task.Priority) + "</code>\n" +
		"• Due: <code>" + html.EscapeString(task.due()) + "</code>"

	var errs []error
	for _, r := range recipients {
		if r.TelegramChatID == nil || *r.TelegramChatID == 0 {
			continue
		}
		if err := n.send(*r.TelegramChatID, text); err != nil {
			errs = append(errs, fmt.Errorf("telegram to %s: %w", r.EmployeeID, err))
		}
	}
	return errors.Join(errs...)
}

func (n *TelegramNotifier) EmployeeCreated(_ context.Context, e models.Employee) error {
	if e.TelegramChatID == nil || *e.TelegramChatID == 0 {
		return nil
	}
	return n.send(*e.TelegramChatID, "👋 Welcome, "+html.EscapeString(e.Name)+"! Your ETATS account is ready.")
}
