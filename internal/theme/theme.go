// Package theme resolves and persists the light/dark display preference.
//
// The preference is read from and written to an injected key-value Store.
// When nothing has been saved, the injected PrefersDark query decides.
package theme

import (
	"context"
	"errors"
	"strings"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the key the preference is saved under.
const StorageKey = "theme"

var ErrInvalidTheme = errors.New("invalid theme")

// Store is persistent key-value storage. Deleting a missing key is not an
// error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// PrefersDark reports whether the environment asks for a dark color scheme.
type PrefersDark func(ctx context.Context) bool

// Parse accepts "light" or "dark" in any case.
func Parse(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", ErrInvalidTheme
	}
}

type Preferences struct {
	store       Store
	prefersDark PrefersDark
}

func NewPreferences(store Store, prefersDark PrefersDark) *Preferences {
	if store == nil {
		store = NewMemoryStore()
	}
	if prefersDark == nil {
		prefersDark = func(context.Context) bool { return false }
	}
	return &Preferences{
		store:       store,
		prefersDark: prefersDark,
	}
}

// Resolve returns the saved theme, or the environment preference when
// nothing valid has been saved.
func (p *Preferences) Resolve(ctx context.Context) (Theme, error) {
	saved, ok, err := p.store.Get(ctx, StorageKey)
	if err != nil {
		return "", err
	}
	if ok {
		if t, err := Parse(saved); err == nil {
			return t, nil
		}
	}

	if p.prefersDark(ctx) {
		return Dark, nil
	}
	return Light, nil
}

// Set persists t. Anything other than Dark is stored as Light.
func (p *Preferences) Set(ctx context.Context, t Theme) (Theme, error) {
	if t != Dark {
		t = Light
	}
	if err := p.store.Set(ctx, StorageKey, string(t)); err != nil {
		return "", err
	}
	return t, nil
}

// Clear forgets the saved theme so the environment preference applies again,
// and returns the theme now in effect.
func (p *Preferences) Clear(ctx context.Context) (Theme, error) {
	if err := p.store.Delete(ctx, StorageKey); err != nil {
		return "", err
	}
	return p.Resolve(ctx)
}

// Toggle switches between light and dark and persists the result.
func (p *Preferences) Toggle(ctx context.Context) (Theme, error) {
	current, err := p.Resolve(ctx)
	if err != nil {
		return "", err
	}
	if current == Dark {
		return p.Set(ctx, Light)
	}
	return p.Set(ctx, Dark)
}
