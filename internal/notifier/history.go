package notifier

import (
	"log/slog"
	"time"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/entity"
)

// HistoryObserver records each dial in the dial history
type HistoryObserver struct {
	recorder entity.DialRecorder
	now      func() time.Time
}

func NewHistoryObserver(recorder entity.DialRecorder) *HistoryObserver {
	return &HistoryObserver{recorder: recorder, now: time.Now}
}

func (o *HistoryObserver) Notify(number entity.PhoneNumber) {
	record := entity.NewDialRecord(number, o.now().UTC())
	if err := o.recorder.SaveDial(record); err != nil {
		slog.Error("unable to save dial record", "phone_number", number, "error", err)
		return
	}
	slog.Debug("dial record saved", "phone_number", number, "record_id", record.ID)
}
