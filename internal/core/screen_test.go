package core

import (
	"strings"
	"testing"
)

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(10, 3)

	// Text overruns the right edge and is clipped, not wrapped.
	s.DrawText(7, 1, "belt")
	row := strings.Split(s.String(), "\n")[1]
	if row != "       bel" {
		t.Errorf("row = %q, want clipped draw", row)
	}

	// Negative start clips on the left too.
	s.Clear()
	s.DrawText(-2, 0, "belt")
	row = strings.Split(s.String(), "\n")[0]
	if row != "lt        " {
		t.Errorf("row = %q, want left-clipped draw", row)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if got := s.String(); got != "    abc    " {
		t.Errorf("centered = %q", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawText(0, 0, "keep")

	s.Resize(10, 4)
	if s.Get(0, 0) != 'k' || s.Get(3, 0) != 'p' {
		t.Error("content lost on grow")
	}

	s.Resize(2, 1)
	if s.Get(0, 0) != 'k' || s.Get(1, 0) != 'e' {
		t.Error("content lost on shrink")
	}
	if s.Get(5, 0) != ' ' {
		t.Error("out-of-bounds read should return space")
	}
}

func TestScreenSetOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(-1, 0, 'x')
	s.Set(4, 0, 'x')
	s.Set(0, 2, 'x')

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("out-of-bounds writes landed: %q", s.String())
	}
}
