package core

import (
	"strings"
	"testing"
)

// rows returns every screen row, for whole-buffer comparisons.
func rows(s *Screen) []string {
	out := make([]string, s.Height())
	for y := range out {
		out[y] = s.Row(y)
	}
	return out
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if row != strings.Repeat(" ", 12) {
			t.Errorf("row %d = %q, expected blanks", y, row)
		}
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], '#', ColorRed) // must not panic
		if got := s.GetCell(p[0], p[1]); got != (Cell{Rune: ' '}) {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], got)
		}
	}
	if s.String() != "    \n    " {
		t.Errorf("out-of-bounds writes leaked: %q", s.String())
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('·')
	if s.String() != "···\n···" {
		t.Errorf("Fill: got %q", s.String())
	}

	s.SetColored(1, 1, 'ᗣ', ColorBrightRed)
	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name  string
		draw  func(s *Screen)
		row   int
		want  string
		color Color
	}{
		{
			name: "left aligned",
			draw: func(s *Screen) { s.DrawText(1, 0, "Score: 10") },
			want: " Score: 10",
		},
		{
			name: "clipped at the right edge",
			draw: func(s *Screen) { s.DrawText(8, 0, "High") },
			want: "        Hi",
		},
		{
			name: "centered counts runes not bytes",
			draw: func(s *Screen) { s.DrawTextCentered(1, "ᗧ··") },
			row:  1,
			want: "   ᗧ··    ",
		},
		{
			name:  "colored",
			draw:  func(s *Screen) { s.DrawTextCenteredColored(0, "GO", ColorBrightGreen) },
			want:  "    GO    ",
			color: ColorBrightGreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 2)
			tt.draw(s)
			if got := s.Row(tt.row); got != tt.want {
				t.Errorf("Row(%d) = %q, expected %q", tt.row, got, tt.want)
			}
			if tt.color != ColorDefault {
				x := strings.IndexFunc(tt.want, func(r rune) bool { return r != ' ' })
				if c := s.GetCell(x, tt.row).Color; c != tt.color {
					t.Errorf("color at %d = %d, expected %d", x, c, tt.color)
				}
			}
		})
	}
}

func TestScreenPanel(t *testing.T) {
	s := NewScreen(9, 5)
	s.Fill('·')

	r := NewRect(0, 0, 7, 3).CenteredOn(4, 2)
	s.DrawRect(r, ' ')
	s.DrawBox(r)
	s.DrawText(r.Inset(1).X+1, 2, "OK")

	want := []string{
		"·········",
		"·┌─────┐·",
		"·│ OK  │·",
		"·└─────┘·",
		"·········",
	}
	for y, got := range rows(s) {
		if got != want[y] {
			t.Errorf("row %d = %q, expected %q", y, got, want[y])
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "READY!")
	s.DrawText(0, 5, "lost")

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if s.Row(0) != "READ" {
		t.Errorf("Row(0) = %q after shrinking", s.Row(0))
	}

	s.Resize(8, 6)
	if s.Row(0) != "READ    " {
		t.Errorf("Row(0) = %q after growing", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("cropped rows must not come back, got %q", s.Row(5))
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(-1); got != "   " {
		t.Errorf("Row(-1) = %q, expected blanks", got)
	}
	if got := s.Row(1); got != "   " {
		t.Errorf("Row(1) = %q, expected blanks", got)
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, 'ᗧ', ColorBrightYellow)
	s.DrawTextColored(3, 1, "·●", ColorOrange)

	if c := s.GetCell(1, 1); c.Rune != 'ᗧ' || c.Color != ColorBrightYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected yellow ᗧ", c)
	}
	if s.Get(4, 1) != '●' {
		t.Errorf("Get(4, 1) = %q, expected '●' (multi-byte runes take one cell)", s.Get(4, 1))
	}
	if s.GetCell(4, 1).Color != ColorOrange {
		t.Error("DrawTextColored should color every rune")
	}

	s.Set(1, 1, 'x')
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set should reset the cell color")
	}
}
