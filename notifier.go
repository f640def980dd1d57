package bazellens

// Notifier delivers user-facing warnings to the host editor. Warnings are
// advisory (e.g. "no workspace found"); errors are returned, not notified.
type Notifier interface {
	Warn(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string)

// Warn implements Notifier.
func (f NotifierFunc) Warn(message string) {
	f(message)
}

// noopNotifier swallows warnings. Used when the host does not register one.
type noopNotifier struct{}

func (noopNotifier) Warn(string) {}
