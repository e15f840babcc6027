package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/config"
	"github.com/AgwuChukwuma/Phone-Notifier/internal/entity"
	"github.com/AgwuChukwuma/Phone-Notifier/internal/storage"
)

type dialHistory interface {
	RecentDials(limit int) ([]entity.DialRecord, error)
}

type HistoryShowCommand struct {
}

func NewHistoryShowCommand() *HistoryShowCommand {
	cmd := HistoryShowCommand{}
	return &cmd
}

func (cmd *HistoryShowCommand) Name() string {
	return "history:show"
}

func (cmd *HistoryShowCommand) Description() string {
	return "prints the latest dialed phone numbers"
}

func (cmd *HistoryShowCommand) Run() error {
	conf := config.GetConfig()
	if err := conf.RequireDatabase(); err != nil {
		return err
	}
	manager := storage.NewManager(conf.DbConnectionString)
	if err := manager.Connect(); err != nil {
		return err
	}
	return printHistory(os.Stdout, manager, conf.HistoryLimit)
}

func printHistory(out io.Writer, history dialHistory, limit int) error {
	records, err := history.RecentDials(limit)
	if err != nil {
		return err
	}
	slog.Debug("dial records loaded", "records_count", len(records), "limit", limit)

	if len(records) == 0 {
		_, err = fmt.Fprintln(out, "No phone numbers dialed yet.")
		return err
	}
	for _, record := range records {
		if _, err = fmt.Fprintln(out, record.Format()); err != nil {
			return err
		}
	}
	return nil
}
