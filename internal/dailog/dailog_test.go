package dailog

import (
	"testing"

	"github.com/juju/loggo"

	"github.com/yetsing/dai/pkg/token"
)

func TestSetVerbosityRaisesLevel(t *testing.T) {
	defer loggo.ResetLogging()

	if err := SetVerbosity(0); err != nil {
		t.Fatalf("SetVerbosity(0): %v", err)
	}
	if got := Logger("dai").LogLevel(); got != loggo.WARNING {
		t.Fatalf("level at -v=0 = %v, want WARNING", got)
	}

	if err := SetVerbosity(2); err != nil {
		t.Fatalf("SetVerbosity(2): %v", err)
	}
	if got := Logger("dai").LogLevel(); got != loggo.TRACE {
		t.Fatalf("level at -v=2 = %v, want TRACE", got)
	}
}

func TestTokenTracerDoesNotPanic(t *testing.T) {
	defer loggo.ResetLogging()
	SetVerbosity(2)

	trace := TokenTracer("dai.test")
	trace(token.Token{
		Type:    token.Ident,
		Literal: "x",
		Span:    token.Span{Start: token.Position{Line: 1, Column: 1}, End: token.Position{Line: 1, Column: 2}},
	})
}
