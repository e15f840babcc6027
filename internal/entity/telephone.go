package entity

import (
	"log/slog"
	"sync"
)

// Telephone is the subject: a phone directory whose dials are broadcast
// to the registered observers.
type Telephone struct {
	mu        sync.Mutex
	registry  *Registry
	notifier  *Notifier
	announcer func(number PhoneNumber)
}

type Option func(*Telephone)

// WithDialAnnouncer sets a callback invoked once a dialed number is found,
// before any observer is notified.
func WithDialAnnouncer(announcer func(number PhoneNumber)) Option {
	return func(t *Telephone) {
		t.announcer = announcer
	}
}

func NewTelephone(opts ...Option) *Telephone {
	t := &Telephone{
		registry: NewRegistry(),
		notifier: NewNotifier(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Telephone) AddPhoneNumber(number string) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	status := t.registry.Add(PhoneNumber(number))
	slog.Debug("add phone number", "phone_number", number, "status", status)
	return status
}

func (t *Telephone) RemovePhoneNumber(number string) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	status := t.registry.Remove(PhoneNumber(number))
	slog.Debug("remove phone number", "phone_number", number, "status", status)
	return status
}

// DialPhoneNumber notifies the observers registered at the moment of the
// call. Unknown numbers notify nobody.
func (t *Telephone) DialPhoneNumber(number string) DialResult {
	t.mu.Lock()
	if !t.registry.Contains(PhoneNumber(number)) {
		t.mu.Unlock()
		slog.Debug("dial unknown phone number", "phone_number", number)
		return DialResult{Status: StatusNotFound}
	}
	observers := t.notifier.snapshot()
	t.mu.Unlock()

	// Lock is released so observers may call back into the telephone.
	if t.announcer != nil {
		t.announcer(PhoneNumber(number))
	}
	sent := notifyEach(observers, PhoneNumber(number))
	slog.Debug("phone number dialed", "phone_number", number, "notifies_sent", sent)
	return DialResult{Status: StatusDialed, NotifiesSent: sent}
}

func (t *Telephone) AddObserver(observer Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.notifier.AddObserver(observer)
	slog.Debug("observer added", "observers_count", t.notifier.Len())
}

func (t *Telephone) RemoveObserver(observer Observer) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	status := t.notifier.RemoveObserver(observer)
	slog.Debug("remove observer", "status", status, "observers_count", t.notifier.Len())
	return status
}

// PhoneNumbers returns the registered numbers in insertion order
func (t *Telephone) PhoneNumbers() []PhoneNumber {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.registry.Numbers()
}

func (t *Telephone) ObserversCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notifier.Len()
}
