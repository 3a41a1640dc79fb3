// Package dailog wires loggo.Logger into the places that used to just carry
// a dangling tracing flag: the lexer's WithTracing option, and anything
// else along the CLI path that wants levelled, named logging instead of ad
// hoc fmt.Fprintf(os.Stderr, ...) calls.
package dailog

import (
	"github.com/juju/loggo"

	"github.com/yetsing/dai/pkg/token"
)

// Logger returns the named loggo.Logger, creating it (at the module root's
// configured level) on first use. Names are dotted, "dai.lexer" style, so
// -v can raise or lower a whole subsystem at once.
func Logger(name string) loggo.Logger {
	return loggo.GetLogger(name)
}

// SetVerbosity raises or lowers every dai.* logger to level, mirroring the
// CLI's -v flag: 0 keeps the default (WARNING), 1 is INFO, 2+ is TRACE.
func SetVerbosity(v int) error {
	level := loggo.WARNING
	switch {
	case v >= 2:
		level = loggo.TRACE
	case v == 1:
		level = loggo.INFO
	}
	_, err := loggo.ConfigureLoggers("dai=" + level.String())
	return err
}

// TokenTracer returns a func(token.Token) suitable for
// lexer.WithTracing that logs each emitted token at TRACE level through the
// named logger, completing the wiring the lexer's option left open.
func TokenTracer(loggerName string) func(token.Token) {
	logger := Logger(loggerName)
	return func(tok token.Token) {
		logger.Tracef("%s %q at %d:%d", tok.Type.String(), tok.Literal, tok.Start().Line, tok.Start().Column)
	}
}
