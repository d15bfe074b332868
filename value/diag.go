package value

import "sync/atomic"

var sink atomic.Pointer[func(string)]

// SetDiagnosticSink installs f as the receiver of messages about failures
// that Compare recovers from. A nil f restores the default, which
// discards them.
func SetDiagnosticSink(f func(msg string)) {
	if f == nil {
		sink.Store(nil)
		return
	}
	sink.Store(&f)
}

func report(msg string) {
	if f := sink.Load(); f != nil {
		(*f)(msg)
	}
}
