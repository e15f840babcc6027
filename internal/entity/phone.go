package entity

// PhoneNumber is an opaque identifier, no format is enforced.
type PhoneNumber string

type Status string

const (
	StatusAdded         Status = "added"
	StatusAlreadyExists Status = "already_exists"
	StatusRemoved       Status = "removed"
	StatusNotFound      Status = "not_found"
	StatusDialed        Status = "dialed"
)

// DialResult reports the outcome of a dial. NotifiesSent is zero unless Status is StatusDialed.
type DialResult struct {
	Status       Status
	NotifiesSent int
}
