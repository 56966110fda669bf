package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen not blank at (%d, %d): %+v", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out of bounds Set leaked onto the screen")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRectColor(NewRect(0, 0, 4, 3), 'X', ColorRed)
	s.Clear()

	if got := s.String(); got != "    \n    \n    " {
		t.Errorf("after Clear String() = %q", got)
	}
	if c := s.GetCell(1, 1); c.Color != ColorDefault {
		t.Errorf("Clear should drop colours, got %v", c.Color)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColor(0, 0, "█░▰x", ColorGreen)

	want := []rune{'█', '░', '▰', 'x'}
	for i, r := range want {
		if c := s.GetCell(i, 0); c.Rune != r || c.Color != ColorGreen {
			t.Errorf("cell %d = %+v, expected green %q", i, c, r)
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#')

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawRectColorClips(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRectColor(NewRect(4, -2, 10, 4), '#', ColorYellow)

	if c := s.GetCell(5, 1); c.Rune != '#' || c.Color != ColorYellow {
		t.Errorf("visible corner = %+v", c)
	}
	if c := s.GetCell(3, 0); c.Rune != ' ' {
		t.Errorf("left of rect = %+v", c)
	}
	if c := s.GetCell(4, 2); c.Rune != ' ' {
		t.Errorf("below rect = %+v", c)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 5))
	if strings.TrimSpace(s.String()) != "" {
		t.Error("1-wide box should not draw")
	}
}

func TestScreenDrawHLineColor(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawHLineColor(-2, 2, 20, '=', ColorGray)

	for x := range 10 {
		if c := s.GetCell(x, 2); c.Rune != '=' || c.Color != ColorGray {
			t.Fatalf("cell (%d, 2) = %+v", x, c)
		}
	}
	if s.Get(0, 1) != ' ' {
		t.Error("line leaked onto another row")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawTextColor(0, 2, "CCCCC", ColorCyan)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorRed)
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after shrink size = %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); !strings.HasPrefix(got, "Hello   \n") {
		t.Errorf("top-left content lost: %q", got)
	}
	if c := s.GetCell(0, 0); c.Color != ColorRed {
		t.Errorf("colour lost on resize: %+v", c)
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.String(), "Hello          \n") {
		t.Errorf("content lost after enlarging: %q", s.String())
	}
	if s.Get(0, 5) != ' ' {
		t.Error("rows dropped by the shrink should not come back")
	}

	s.Resize(-3, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to 0, got %d %q", s.Width(), s.String())
	}
}
