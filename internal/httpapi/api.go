package httpapi

import (
	"times-table/internal/game"
	"times-table/internal/theme"
)

type API struct {
	sessions *game.Registry
	themes   *theme.Preferences
	defaults game.Settings
}

// NewAPI wires the handlers. A nil registry or preferences gets an in-memory
// default.
func NewAPI(sessions *game.Registry, themes *theme.Preferences, defaults game.Settings) *API {
	if sessions == nil {
		sessions = game.NewRegistry()
	}
	if themes == nil {
		themes = theme.NewPreferences(theme.NewMemoryStore(), PrefersDarkFromContext)
	}
	return &API{
		sessions: sessions,
		themes:   themes,
		defaults: defaults,
	}
}
