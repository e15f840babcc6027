package entity

import "slices"

// Notifier keeps observers in registration order. Observers are shared
// references, the notifier never owns them.
type Notifier struct {
	observers []Observer
}

func NewNotifier() *Notifier {
	return &Notifier{observers: make([]Observer, 0)}
}

// AddObserver always appends, the same observer may be registered twice.
func (n *Notifier) AddObserver(observer Observer) {
	n.observers = append(n.observers, observer)
}

// RemoveObserver drops the first registration of the observer.
// Observers are matched by identity, so pointer receivers are expected.
func (n *Notifier) RemoveObserver(observer Observer) Status {
	index := slices.IndexFunc(n.observers, func(o Observer) bool {
		return o == observer
	})
	if index == -1 {
		return StatusNotFound
	}
	n.observers = slices.Delete(n.observers, index, index+1)
	return StatusRemoved
}

// NotifyAll calls every observer in registration order and returns the number of calls made.
func (n *Notifier) NotifyAll(number PhoneNumber) int {
	return notifyEach(n.observers, number)
}

func (n *Notifier) snapshot() []Observer {
	return slices.Clone(n.observers)
}

func (n *Notifier) Len() int {
	return len(n.observers)
}

func notifyEach(observers []Observer, number PhoneNumber) int {
	for _, observer := range observers {
		observer.Notify(number)
	}
	return len(observers)
}
