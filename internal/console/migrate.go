package console

import (
	"log/slog"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/config"
	"github.com/AgwuChukwuma/Phone-Notifier/internal/storage"
)

type MigrateCommand struct {
}

func NewMigrateCommand() *MigrateCommand {
	cmd := MigrateCommand{}
	return &cmd
}

func (cmd *MigrateCommand) Name() string {
	return "migrate"
}

func (cmd *MigrateCommand) Description() string {
	return "migrates GORM database scheme of the dial history"
}

func (cmd *MigrateCommand) Run() error {
	slog.Info("migrating GORM database scheme")

	conf := config.GetConfig()
	if err := conf.RequireDatabase(); err != nil {
		return err
	}
	manager := storage.NewManager(conf.DbConnectionString)
	if err := manager.Connect(); err != nil {
		return err
	}
	if err := manager.Migrate(); err != nil {
		return err
	}

	slog.Info("successfully migrated GORM database scheme")

	return nil
}
