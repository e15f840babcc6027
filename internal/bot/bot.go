package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/entity"
	tele "gopkg.in/telebot.v4"
)

var ErrNoRecipients = errors.New("no notification recipients")

type Bot struct {
	bot         *tele.Bot
	destination []Recipient
}

type Recipient struct {
	User     tele.User
	ThreadID int
}

// CreateBot returns [entity.MessageDispatcher] object to send notifications
//   - recipients is a string "chat_id1,thread_id1;chat_id2,thread_id2"
func CreateBot(token string, recipients string) (entity.MessageDispatcher, error) {
	b, err := createBot(tele.Settings{Token: token}, recipients)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func createBot(pref tele.Settings, recipients string) (*Bot, error) {
	destination, err := prepareDestination(recipients)
	if err != nil {
		return nil, err
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		slog.Error("unable to create bot processor object", "error", err)
		return nil, err
	}

	return &Bot{
		bot:         b,
		destination: destination,
	}, nil
}

// prepareDestination parses the recipients string into [gopkg.in/telebot.v4.User] list.
// Thread ID may be omitted: "chat_id" is the same as "chat_id,0".
func prepareDestination(recipients string) ([]Recipient, error) {
	result := make([]Recipient, 0)
	for _, pair := range strings.Split(recipients, ";") {
		pair = strings.TrimSpace(pair)
		if len(pair) == 0 {
			continue
		}
		dst := strings.Split(pair, ",")
		if len(dst) > 2 {
			return nil, fmt.Errorf("malformed recipient %q", pair)
		}
		chatID, err := strconv.ParseInt(strings.TrimSpace(dst[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed chat id in recipient %q: %w", pair, err)
		}
		threadID := 0
		if len(dst) == 2 {
			if threadID, err = strconv.Atoi(strings.TrimSpace(dst[1])); err != nil {
				return nil, fmt.Errorf("malformed thread id in recipient %q: %w", pair, err)
			}
		}
		result = append(result, Recipient{User: tele.User{ID: chatID}, ThreadID: threadID})
	}
	if len(result) == 0 {
		return nil, ErrNoRecipients
	}
	slog.Debug("recipients prepared", "recipients", result)
	return result, nil
}

// Send notification to all prepared recipients
func (b *Bot) Send(notification []string) (err error) {
	for _, dest := range b.destination {
		for _, txt := range notification {
			if _, err = b.bot.Send(&dest.User, txt, &tele.SendOptions{
				ParseMode: tele.ModeHTML, ThreadID: dest.ThreadID, DisableWebPagePreview: true}); err != nil {
				slog.Error("failed to send notification", "chat_id", dest.User.ID, "thread_id", dest.ThreadID, "notification", txt, "error", err)
				return fmt.Errorf("send notification to chat %d: %w", dest.User.ID, err)
			}
		}
		slog.Debug("notification sent", "chat_id", dest.User.ID, "thread_id", dest.ThreadID, "parts_count", len(notification))
	}
	return nil
}
