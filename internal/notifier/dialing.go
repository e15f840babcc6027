package notifier

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/entity"
)

// DialingMessageObserver shows a dialing message
type DialingMessageObserver struct {
	out io.Writer
}

func NewDialingMessageObserver(out io.Writer) *DialingMessageObserver {
	return &DialingMessageObserver{out: out}
}

func (o *DialingMessageObserver) Notify(number entity.PhoneNumber) {
	if _, err := fmt.Fprintf(o.out, "Now Dialling %s\n", number); err != nil {
		slog.Error("dialing message observer failed", "phone_number", number, "error", err)
	}
}
