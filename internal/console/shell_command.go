package console

import (
	"log/slog"
	"os"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/bot"
	"github.com/AgwuChukwuma/Phone-Notifier/internal/config"
	"github.com/AgwuChukwuma/Phone-Notifier/internal/notifier"
	"github.com/AgwuChukwuma/Phone-Notifier/internal/storage"
)

type ShellCommand struct {
}

func NewShellCommand() *ShellCommand {
	cmd := ShellCommand{}
	return &cmd
}

func (cmd *ShellCommand) Name() string {
	return "phone:shell"
}

func (cmd *ShellCommand) Description() string {
	return "interactive phone directory, dialing notifies the observers"
}

func (cmd *ShellCommand) Run() error {
	conf := config.GetConfig()

	shell := NewShell(os.Stdin, os.Stdout)
	shell.AddObserver("PrintPhoneNumberObserver", notifier.NewPrintObserver(os.Stdout))
	shell.AddObserver("DialingMessageObserver", notifier.NewDialingMessageObserver(os.Stdout))
	if conf.Debug {
		shell.AddObserver("", notifier.NewLogObserver(slog.Default()))
	}

	if conf.TelegramEnabled() {
		b, err := bot.CreateBot(conf.BotToken, conf.NotificationChatID)
		if err != nil {
			return err
		}
		shell.AddObserver("TelegramObserver", notifier.NewTelegramObserver(b))
	}

	if conf.HistoryEnabled() {
		manager := storage.NewManager(conf.DbConnectionString)
		if err := manager.Connect(); err != nil {
			return err
		}
		shell.AddObserver("HistoryObserver", notifier.NewHistoryObserver(manager))
	}

	slog.Debug("starting the shell", "observers_count", shell.Telephone().ObserversCount())
	return shell.Run()
}
