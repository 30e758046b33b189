package checkers

import (
	"testing"
)

// mockChecker rejects candidates equal to reject and counts calls.
type mockChecker struct {
	name   string
	reject string
	calls  int
}

func (m *mockChecker) Name() string {
	return m.name
}

func (m *mockChecker) Check(candidate string) bool {
	m.calls++
	return candidate == m.reject
}

func TestNewPipeline(t *testing.T) {
	p := NewPipeline()
	if p == nil {
		t.Fatal("expected non-nil pipeline")
	}
	if p.Len() != 0 {
		t.Errorf("expected 0 checkers, got %d", p.Len())
	}
}

func TestNewPipeline_SkipsNil(t *testing.T) {
	p := NewPipeline(nil, &mockChecker{name: "a"}, nil)
	if p.Len() != 1 {
		t.Errorf("expected 1 checker, got %d", p.Len())
	}
}

func TestPipeline_Add(t *testing.T) {
	p := NewPipeline()
	p.Add(&mockChecker{name: "test"})
	p.Add(nil)

	if p.Len() != 1 {
		t.Errorf("expected 1 checker, got %d", p.Len())
	}
}

func TestPipeline_EmptyAcceptsEverything(t *testing.T) {
	p := NewPipeline()
	if p.Check("password") {
		t.Error("empty pipeline should accept every candidate")
	}
}

func TestPipeline_ShortCircuits(t *testing.T) {
	first := &mockChecker{name: "first", reject: "bad"}
	second := &mockChecker{name: "second", reject: "bad"}
	p := NewPipeline(first, second)

	if !p.Check("bad") {
		t.Fatal("expected rejection")
	}
	if first.calls != 1 {
		t.Errorf("expected first checker called once, got %d", first.calls)
	}
	if second.calls != 0 {
		t.Errorf("expected second checker skipped, got %d calls", second.calls)
	}
}

func TestPipeline_RunsAllOnAccept(t *testing.T) {
	first := &mockChecker{name: "first", reject: "x"}
	second := &mockChecker{name: "second", reject: "y"}
	p := NewPipeline(first, second)

	if p.Check("good") {
		t.Fatal("expected acceptance")
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("expected both checkers called once, got %d and %d", first.calls, second.calls)
	}
}

func TestPipeline_RejectedBy(t *testing.T) {
	p := NewPipeline(
		&mockChecker{name: "first", reject: "a"},
		&mockChecker{name: "second", reject: "b"},
	)

	if got := p.RejectedBy("b"); got != "second" {
		t.Errorf("expected second, got %q", got)
	}
	if got := p.RejectedBy("c"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestPipeline_Name(t *testing.T) {
	p := NewPipeline(&mockChecker{name: "a"}, &mockChecker{name: "b"})
	if got := p.Name(); got != "pipeline(a,b)" {
		t.Errorf("unexpected name %q", got)
	}
}
