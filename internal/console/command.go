package console

// Command is a console command selected by its name from the arguments
type Command interface {
	Name() string
	Description() string
	Run() error
}
