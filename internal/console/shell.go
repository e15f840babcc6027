package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/entity"
)

const mainMenu = `
Please select an action:
1: Add a phone number
2: Remove a phone number
3: Dial a phone number
4: Remove an observer
5: Exit
`

type removableObserver struct {
	label    string
	observer entity.Observer
}

// Shell is the interactive text menu around a telephone it owns.
type Shell struct {
	in        *bufio.Reader
	readErr   error
	out       io.Writer
	phone     *entity.Telephone
	removable []removableObserver
}

func NewShell(in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		in:  bufio.NewReader(in),
		out: out,
	}
	s.phone = entity.NewTelephone(entity.WithDialAnnouncer(func(number entity.PhoneNumber) {
		s.println(fmt.Sprintf("Dialing %s...", number))
	}))
	return s
}

func (s *Shell) Telephone() *entity.Telephone {
	return s.phone
}

// AddObserver registers the observer. Labelled observers are offered in the removal submenu.
func (s *Shell) AddObserver(label string, observer entity.Observer) {
	s.phone.AddObserver(observer)
	if len(label) > 0 {
		s.removable = append(s.removable, removableObserver{label: label, observer: observer})
	}
	s.println("Observer added.")
}

// Run loops over menu selections until exit or end of input
func (s *Shell) Run() error {
	for {
		s.print(mainMenu)
		action, ok := s.readLine()
		if !ok {
			return s.exit()
		}

		switch action {
		case "1":
			number, ok := s.ask("Enter the phone number to add: ")
			if !ok {
				return s.exit()
			}
			s.addPhoneNumber(number)
		case "2":
			number, ok := s.ask("Enter the phone number to remove: ")
			if !ok {
				return s.exit()
			}
			s.removePhoneNumber(number)
		case "3":
			number, ok := s.ask("Enter the phone number to dial: ")
			if !ok {
				return s.exit()
			}
			s.dialPhoneNumber(number)
		case "4":
			if !s.removeObserver() {
				return s.exit()
			}
		case "5":
			return s.exit()
		default:
			s.println("Invalid option. Please try again.")
		}
	}
}

func (s *Shell) addPhoneNumber(number string) {
	switch s.phone.AddPhoneNumber(number) {
	case entity.StatusAdded:
		s.println(fmt.Sprintf("Phone number %s added.", number))
	case entity.StatusAlreadyExists:
		s.println(fmt.Sprintf("Phone number %s already exists.", number))
	}
}

func (s *Shell) removePhoneNumber(number string) {
	switch s.phone.RemovePhoneNumber(number) {
	case entity.StatusRemoved:
		s.println(fmt.Sprintf("Phone number %s removed.", number))
	case entity.StatusNotFound:
		s.println(fmt.Sprintf("Phone number %s not found.", number))
	}
}

func (s *Shell) dialPhoneNumber(number string) {
	result := s.phone.DialPhoneNumber(number)
	if result.Status == entity.StatusNotFound {
		s.println(fmt.Sprintf("Phone number %s not found.", number))
		return
	}
	slog.Debug("phone number dialed", "phone_number", number, "notifies_sent", result.NotifiesSent)
}

// removeObserver returns false when the input is exhausted
func (s *Shell) removeObserver() bool {
	var submenu strings.Builder
	submenu.WriteString("\n")
	for i, r := range s.removable {
		fmt.Fprintf(&submenu, "%d: Remove %s\n", i+1, r.label)
	}
	choice, ok := s.ask(submenu.String())
	if !ok {
		return false
	}

	index := -1
	for i := range s.removable {
		if choice == fmt.Sprint(i+1) {
			index = i
			break
		}
	}
	if index == -1 {
		s.println("Invalid option.")
		return true
	}

	switch s.phone.RemoveObserver(s.removable[index].observer) {
	case entity.StatusRemoved:
		s.println("Observer removed.")
	case entity.StatusNotFound:
		s.println("Observer not found.")
	}
	return true
}

func (s *Shell) exit() error {
	if s.readErr != nil {
		return fmt.Errorf("read input: %w", s.readErr)
	}
	s.println("Exiting the system.")
	return nil
}

func (s *Shell) ask(prompt string) (string, bool) {
	s.print(prompt)
	return s.readLine()
}

// readLine returns false at end of input or on a read error.
// Lines have no length limit, numbers are not validated.
func (s *Shell) readLine() (string, bool) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.readErr = err
			return "", false
		}
		if len(line) == 0 {
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

func (s *Shell) print(text string) {
	if _, err := io.WriteString(s.out, text); err != nil {
		slog.Error("failed to write to the console", "error", err)
	}
}

func (s *Shell) println(text string) {
	s.print(text + "\n")
}
