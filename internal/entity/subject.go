package entity

// Observer is notified once per dial of a registered number.
//
// Notify has no error return: implementations handle and log their own
// failures, so a broken observer never stops the remaining ones from
// being notified.
type Observer interface {
	Notify(number PhoneNumber)
}

// MessageDispatcher delivers text notifications to the configured recipients
type MessageDispatcher interface {
	Send(notification []string) error
}

// DialRecorder stores dial events
type DialRecorder interface {
	SaveDial(record *DialRecord) error
}
