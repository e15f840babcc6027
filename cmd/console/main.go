package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/config"
	"github.com/AgwuChukwuma/Phone-Notifier/internal/console"
)

type Commands []console.Command

func main() {
	config.GetConfig()
	slog.Debug("starting console command")

	commands := initCommands()
	if len(os.Args) > 1 {
		runCommand(commands, os.Args[1])
	} else {
		printHelp(commands)
	}

	slog.Debug("command finished")
}

func initCommands() Commands {
	help := console.NewHelpCommand(os.Stdout)
	commands := Commands{
		help,
		console.NewShellCommand(),
		console.NewMigrateCommand(),
		console.NewHistoryShowCommand(),
	}
	help.Register(commands...)
	return commands
}

func runCommand(commands Commands, arg string) {
	cmd, found := commands.find(arg)
	if !found {
		fmt.Printf("command '%s' not found\n", arg)
		printHelp(commands)
		os.Exit(1)
	}

	slog.Debug("command found", "command", cmd.Name())
	if err := cmd.Run(); err != nil {
		slog.Error(err.Error(), "command", cmd.Name())
		os.Exit(1)
	}
}

func (c Commands) find(name string) (console.Command, bool) {
	for _, cmd := range c {
		if name == cmd.Name() {
			return cmd, true
		}
	}
	return nil, false
}

func printHelp(commands Commands) {
	if err := console.PrintUsage(os.Stdout, commands); err != nil {
		slog.Error("unable to print usage", "error", err)
	}
}
