package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorIce)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorIce {
		t.Errorf("GetCell(5, 5) = %+v, expected X/ColorIce", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorHUD)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	s.DrawText(18, 0, "Hello", ColorHUD)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("DrawBox corners wrong:\n%s", s.String())
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Errorf("DrawBox edges wrong:\n%s", s.String())
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, '#')
	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize() gave %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should discard content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawHLine(0, 1, 3, '=', ColorSnow)

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[1] != "===" {
		t.Errorf("second row = %q, expected ===", lines[1])
	}
	if s.Row(0) != "   " {
		t.Errorf("Row(0) = %q, expected blanks", s.Row(0))
	}
}
