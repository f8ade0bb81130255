package keymap

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Load merges user bindings over the defaults and validates the result.
// Entries mapped to "none" remove the default binding. reserved lists
// physical keys the application handles itself, such as the chord key.
// Every invalid entry is reported.
func Load(bindings map[string]string, reserved ...string) (*Keymap, error) {
	km := Default()
	if len(bindings) > 0 {
		km.Source = "config"
	}

	var errs []error
	// Sorted so that error output is stable.
	for _, physical := range slices.Sorted(maps.Keys(bindings)) {
		if err := km.Add(physical, bindings[physical]); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}

	if err := km.Validate(reserved...); err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return km, nil
}
