package cursor

import (
	"math/rand"
	"testing"
)

// Cursor Tests

func TestNewCursor(t *testing.T) {
	c := New(40)
	if c.Offset() != 0 || c.Line() != 0 || c.Column() != 0 {
		t.Errorf("expected (0:0), got %v", c)
	}
}

func TestNewCursorDefaultWidth(t *testing.T) {
	c := New(0)
	if c.Width() != 40 {
		t.Errorf("expected default width 40, got %d", c.Width())
	}
	var zero Cursor
	if zero.Width() != 40 || zero.Column() != 0 {
		t.Error("zero cursor should use the default width")
	}
}

func TestAtNegative(t *testing.T) {
	c := At(-5, 40)
	if c.Offset() != 0 {
		t.Errorf("negative offset should clamp to 0, got %d", c.Offset())
	}
}

func TestCursorPosition(t *testing.T) {
	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{39, 0, 39},
		{40, 1, 0},
		{125, 3, 5},
	}

	for _, tt := range tests {
		c := At(tt.offset, 40)
		if c.Line() != tt.line || c.Column() != tt.column {
			t.Errorf("offset %d: expected (%d:%d), got %v", tt.offset, tt.line, tt.column, c.Position())
		}
	}
}

func TestCursorLeft(t *testing.T) {
	origin := New(40)
	if origin.Left() != origin {
		t.Error("left at (0:0) should be a no-op")
	}

	c := At(40, 40).Left()
	if c.Line() != 0 || c.Column() != 39 {
		t.Errorf("left from (1:0) should wrap to (0:39), got %v", c.Position())
	}

	c = At(45, 40).Left()
	if c.Line() != 1 || c.Column() != 4 {
		t.Errorf("expected (1:4), got %v", c.Position())
	}
}

func TestCursorRightWraps(t *testing.T) {
	c := At(39, 40).Right()
	if c.Line() != 1 || c.Column() != 0 {
		t.Errorf("right from (0:39) should wrap to (1:0), got %v", c.Position())
	}
}

func TestCursorUpDown(t *testing.T) {
	c := At(5, 40)
	if c.Up() != c {
		t.Error("up on line 0 should be a no-op")
	}

	d := c.Down()
	if d.Line() != 1 || d.Column() != 5 {
		t.Errorf("down should keep the column, got %v", d.Position())
	}

	u := d.Up()
	if u != c {
		t.Errorf("up after down should return to start, got %v", u.Position())
	}
}

func TestMoveToPositionClamps(t *testing.T) {
	c := New(40)

	tests := []struct {
		line, column int
		wantLine     int
		wantColumn   int
	}{
		{2, 7, 2, 7},
		{-1, 3, 0, 3},
		{1, 40, 1, 39},
		{1, -4, 1, 0},
	}

	for _, tt := range tests {
		got := c.MoveToPosition(tt.line, tt.column)
		if got.Line() != tt.wantLine || got.Column() != tt.wantColumn {
			t.Errorf("MoveToPosition(%d, %d) = %v, want (%d:%d)",
				tt.line, tt.column, got.Position(), tt.wantLine, tt.wantColumn)
		}
	}
}

func TestCursorImmutable(t *testing.T) {
	c := At(10, 40)
	_ = c.Right()
	_ = c.Down()
	if c.Offset() != 10 {
		t.Error("original cursor should be unchanged")
	}
}

func TestColumnInvariantUnderRandomMotion(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	moves := []func(Cursor) Cursor{Cursor.Left, Cursor.Right, Cursor.Up, Cursor.Down}

	c := New(40)
	for i := 0; i < 5000; i++ {
		c = moves[rng.Intn(len(moves))](c)
		if c.Column() < 0 || c.Column() >= 40 {
			t.Fatalf("column %d out of range after %d moves", c.Column(), i)
		}
		if c.Line() < 0 {
			t.Fatalf("negative line after %d moves", i)
		}
	}
}
