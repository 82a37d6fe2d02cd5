package notify

import "log"

// Notifier is the toast contract: resource services report mutation outcomes
// through it and the embedding UI decides how to show them. Queries never
// notify.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the standard logger. It is the default
// when no UI-backed notifier is wired in.
type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	log.Printf("notify: %s", message)
}

func (LogNotifier) Error(message string) {
	log.Printf("notify error: %s", message)
}
