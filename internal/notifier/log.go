package notifier

import (
	"log/slog"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/entity"
)

type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Notify(number entity.PhoneNumber) {
	o.logger.Info("observer received notification for phone number", "phone_number", number)
}
