package core

import (
	"strings"
	"testing"
)

// rows returns the screen as plain text lines.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	for i, row := range rows(s) {
		if row != "      " {
			t.Errorf("row %d = %q, want blanks", i, row)
		}
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(5, 2)

	// None of these may panic
	s.Set(-1, 0, 'A')
	s.Set(5, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 2, 'A')
	s.DrawText(3, 1, "Hello")

	if got := s.Row(1); got != "   He" {
		t.Errorf("Row(1) = %q, want text clipped at the right edge", got)
	}
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, want space", got)
	}
	if got := s.Row(7); got != "     " {
		t.Errorf("Row out of bounds = %q, want spaces", got)
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "text",
			draw: func(s *Screen) { s.DrawText(1, 0, "ab") },
			want: []string{" ab    ", "       ", "       ", "       "},
		},
		{
			name: "centered text",
			draw: func(s *Screen) { s.DrawTextCentered(1, "▲▲▲") },
			want: []string{"       ", "  ▲▲▲  ", "       ", "       "},
		},
		{
			name: "filled rect",
			draw: func(s *Screen) { s.DrawRect(NewRect(1, 1, 3, 2), '#') },
			want: []string{"       ", " ###   ", " ###   ", "       "},
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(NewRect(0, 0, 5, 4)) },
			want: []string{"┌───┐  ", "│   │  ", "│   │  ", "└───┘  "},
		},
		{
			name: "horizontal line",
			draw: func(s *Screen) { s.DrawHLine(2, 3, 4, '─') },
			want: []string{"       ", "       ", "       ", "  ──── "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(7, 4)
			tt.draw(s)
			got := rows(s)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Score")
	s.DrawText(0, 5, "gone")

	s.Resize(4, 3)
	if got := s.Row(0); got != "Scor" {
		t.Errorf("after shrink Row(0) = %q", got)
	}

	s.Resize(8, 7)
	if got := s.Row(0); got != "Scor    " {
		t.Errorf("after grow Row(0) = %q", got)
	}
	if strings.Contains(s.String(), "gone") {
		t.Error("content cut by the shrink should not come back")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawTextColored(1, 1, "ok", ColorGreen)
	s.DrawRectColored(NewRect(5, 2, 2, 2), '#', ColorRed)

	if c := s.GetCell(1, 1); c.Rune != 'o' || c.Color != ColorGreen {
		t.Errorf("GetCell(1, 1) = %+v, expected green 'o'", c)
	}
	if c := s.GetCell(6, 3); c.Rune != '#' || c.Color != ColorRed {
		t.Errorf("GetCell(6, 3) = %+v, expected red '#'", c)
	}
	if c := s.GetCell(-1, 0); c != blankCell {
		t.Errorf("Out of bounds GetCell should be blank, got %+v", c)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blankCell {
		t.Error("Clear should reset colors")
	}
}
