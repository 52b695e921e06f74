package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/akashpai/quizdrill/internal/screen"
)

type stubScreen struct {
	name   string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd { s.inited = true; return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.name }
func (s *stubScreen) Title() string        { return s.name }

func TestPushPop(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	child := &stubScreen{name: "child"}
	r.Update(PushScreenMsg{Screen: child})

	if !child.inited {
		t.Error("pushed screen was not initialized")
	}
	if r.Active() != child {
		t.Errorf("Active = %v, want child", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active() != root {
		t.Errorf("Active after pop = %v, want root", r.Active().Title())
	}

	// Popping the last screen is a no-op.
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("Depth after extra pop = %d, want 1", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)

	next := &stubScreen{name: "next"}
	r.Update(ReplaceScreenMsg{Screen: next})

	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", r.Depth())
	}
	if r.Active() != next {
		t.Errorf("Active = %v, want next", r.Active().Title())
	}
	if !next.inited {
		t.Error("replacement screen was not initialized")
	}
}

func TestPopToRoot(t *testing.T) {
	root := &stubScreen{name: "root"}
	r := New(root)
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "a"}})
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "b"}})

	r.Update(PopToRootMsg{})
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", r.Depth())
	}
	if r.Active() != root {
		t.Errorf("Active = %v, want root", r.Active().Title())
	}
}
