package notifier

import (
	"fmt"
	"html"
	"log/slog"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/entity"
)

// TelegramObserver forwards dial events to the Telegram recipients
type TelegramObserver struct {
	bot entity.MessageDispatcher
}

func NewTelegramObserver(bot entity.MessageDispatcher) *TelegramObserver {
	return &TelegramObserver{bot: bot}
}

func (o *TelegramObserver) Notify(number entity.PhoneNumber) {
	slog.Debug("dial event fired", "phone_number", number)
	notification := FormatDialing(number)
	if err := o.bot.Send([]string{notification}); err != nil {
		slog.Error("dial event notification error", "phone_number", number, "error", err)
		return
	}
	slog.Debug("notification sent", "phone_number", number)
}

// FormatDialing renders the HTML message sent to Telegram
func FormatDialing(number entity.PhoneNumber) string {
	return fmt.Sprintf("📞 Now dialling <b>%s</b>", html.EscapeString(string(number)))
}
