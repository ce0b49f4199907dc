// Package theme persists the UI theme preference. The store is a
// single configuration cell with change notification; the visual side
// effect (restyling the TUI) is a subscriber, not part of the cell.
package theme

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/viper"
)

// Theme preference values.
const (
	Light = "light"
	Dark  = "dark"
)

const configKey = "theme"

// Store is the persisted theme preference cell.
type Store struct {
	mu    sync.Mutex
	value string
	subs  []func(string)
}

// Load reads the persisted preference. Unknown values fall back to
// light.
func Load() *Store {
	value := viper.GetString(configKey)
	if value != Light && value != Dark {
		value = Light
	}
	return &Store{value: value}
}

// Current returns the active theme.
func (s *Store) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Subscribe registers fn to be called with the new value after every
// change.
func (s *Store) Subscribe(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Set stores and persists a theme preference, then notifies
// subscribers. Persistence failure is logged, not fatal: the in-memory
// value still changes for this session.
func (s *Store) Set(value string) error {
	if value != Light && value != Dark {
		return fmt.Errorf("invalid theme %q; valid themes are: light, dark", value)
	}

	s.mu.Lock()
	if value == s.value {
		s.mu.Unlock()
		return nil
	}
	s.value = value
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	viper.Set(configKey, value)
	if err := viper.WriteConfig(); err != nil {
		slog.Warn("Failed to persist theme preference", "error", err)
	}

	for _, fn := range subs {
		fn(value)
	}
	return nil
}

// Toggle flips between light and dark.
func (s *Store) Toggle() error {
	if s.Current() == Dark {
		return s.Set(Light)
	}
	return s.Set(Dark)
}
