package mode

import "testing"

func TestControllerDefault(t *testing.T) {
	c := NewController()
	if c.Current() != Insert {
		t.Errorf("expected insert, got %v", c.Current())
	}
}

func TestControllerToggleCycle(t *testing.T) {
	c := NewController()

	want := []Mode{Overwrite, Delete, Insert, Overwrite, Delete, Insert}
	for i, w := range want {
		if got := c.Toggle(); got != w {
			t.Fatalf("toggle %d: expected %v, got %v", i+1, w, got)
		}
	}
}

func TestControllerFullCycleIsIdentity(t *testing.T) {
	for _, start := range []Mode{Insert, Overwrite, Delete} {
		c := NewController()
		if err := c.Set(start); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 3; i++ {
			c.Toggle()
		}
		if c.Current() != start {
			t.Errorf("after 3 toggles from %v got %v", start, c.Current())
		}
	}
}

func TestControllerCallbacks(t *testing.T) {
	c := NewController()

	var changes [][2]Mode
	c.OnChange(func(from, to Mode) {
		changes = append(changes, [2]Mode{from, to})
	})

	c.Toggle()
	_ = c.Set(Insert)
	_ = c.Set(Insert) // no change, no callback

	if len(changes) != 2 {
		t.Fatalf("expected 2 callbacks, got %d", len(changes))
	}
	if changes[0] != [2]Mode{Insert, Overwrite} {
		t.Errorf("unexpected first change %v", changes[0])
	}
	if changes[1] != [2]Mode{Overwrite, Insert} {
		t.Errorf("unexpected second change %v", changes[1])
	}
}

func TestControllerSetInvalid(t *testing.T) {
	c := NewController()
	if err := c.Set(Mode(9)); err == nil {
		t.Error("expected error for invalid mode")
	}
	if c.Current() != Insert {
		t.Error("invalid Set must not change the mode")
	}
}
