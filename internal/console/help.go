package console

import (
	"fmt"
	"io"
)

type HelpCommand struct {
	out      io.Writer
	commands []Command
}

func NewHelpCommand(out io.Writer) *HelpCommand {
	cmd := HelpCommand{out: out}
	return &cmd
}

// Register sets the commands listed by the help
func (cmd *HelpCommand) Register(commands ...Command) {
	cmd.commands = append(cmd.commands, commands...)
}

func (cmd *HelpCommand) Name() string {
	return "help"
}

func (cmd *HelpCommand) Description() string {
	return "prints this help"
}

func (cmd *HelpCommand) Run() error {
	return PrintUsage(cmd.out, cmd.commands)
}

func PrintUsage(out io.Writer, commands []Command) error {
	if _, err := fmt.Fprintln(out, "Usage: phone_console <command>"); err != nil {
		return err
	}
	for _, cmd := range commands {
		if _, err := fmt.Fprintf(out, "\t%s - %s\n", cmd.Name(), cmd.Description()); err != nil {
			return err
		}
	}
	return nil
}
