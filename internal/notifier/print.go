package notifier

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/entity"
)

// PrintObserver prints every dialed number
type PrintObserver struct {
	out io.Writer
}

func NewPrintObserver(out io.Writer) *PrintObserver {
	return &PrintObserver{out: out}
}

func (o *PrintObserver) Notify(number entity.PhoneNumber) {
	if _, err := fmt.Fprintf(o.out, "Phone number dialed: %s\n", number); err != nil {
		slog.Error("print observer failed", "phone_number", number, "error", err)
	}
}
