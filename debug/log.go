package debug

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/signadot/rvalue/encode"
	"github.com/signadot/rvalue/value"
)

// Logf writes a formatted message to stderr. value.Value arguments are
// rendered in the labelled text format.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case value.Value:
			args[i] = encode.MustString(x)
		case *value.Value:
			if x == nil {
				args[i] = "<nil *value.Value>"
				continue
			}
			args[i] = encode.MustString(*x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Sink adapts l into a diagnostic sink for value.SetDiagnosticSink.
func Sink(l *slog.Logger) func(string) {
	l = l.With("component", "value.compare")
	return func(msg string) {
		l.Log(context.Background(), slog.LevelWarn, msg)
	}
}
