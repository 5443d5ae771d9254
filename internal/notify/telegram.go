package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier sends due-review reminders over Telegram. It
// implements the scheduler.Notifier interface.
type TelegramNotifier struct {
	api *tgbotapi.BotAPI
}

// NewTelegramNotifier creates a notifier from a bot token.
func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %v", err)
	}
	return &TelegramNotifier{api: api}, nil
}

// SendReminder tells the learner how many words are waiting for review.
func (n *TelegramNotifier) SendReminder(chatID int64, dueCount int) error {
	noun := "words are"
	if dueCount == 1 {
		noun = "word is"
	}
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%d %s due for review. Open the app to start today's session!", dueCount, noun))
	_, err := n.api.Send(msg)
	return err
}
