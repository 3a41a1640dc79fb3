package daierrors

import (
	"strings"
	"testing"
)

func TestAnnotatePreservesCause(t *testing.T) {
	root := NotFoundf("script %q", "missing.dai")
	wrapped := Annotate(root, "loading entry point")

	if Cause(wrapped) != root {
		t.Fatalf("Cause() = %v, want root %v", Cause(wrapped), root)
	}
	if !strings.Contains(wrapped.Error(), "loading entry point") {
		t.Fatalf("wrapped error %q missing annotation", wrapped.Error())
	}
	if !IsNotFound(wrapped) {
		t.Fatalf("IsNotFound(wrapped) = false, want true")
	}
}

func TestTraceNilIsNil(t *testing.T) {
	if got := Trace(nil); got != nil {
		t.Fatalf("Trace(nil) = %v, want nil", got)
	}
}

func TestStackIncludesEveryAnnotation(t *testing.T) {
	err := Annotatef(NotFoundf("config"), "step %d", 1)
	err = Annotate(err, "step 2")

	stack := Stack(err)
	if !strings.Contains(stack, "step 1") || !strings.Contains(stack, "step 2") {
		t.Fatalf("stack missing an annotation: %s", stack)
	}
}
