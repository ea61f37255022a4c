package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"times-table/internal/game"
	"times-table/internal/theme"
	"times-table/internal/timefmt"
)

// colorSchemeHint is the client hint browsers send for prefers-color-scheme.
const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

type prefersDarkKey struct{}

func withColorSchemeHint(r *http.Request) context.Context {
	dark := strings.EqualFold(strings.Trim(strings.TrimSpace(r.Header.Get(colorSchemeHint)), `"`), "dark")
	return context.WithValue(r.Context(), prefersDarkKey{}, dark)
}

// PrefersDarkFromContext reports the color scheme hint of the request that
// produced ctx. It is the theme.PrefersDark query used by the service.
func PrefersDarkFromContext(ctx context.Context) bool {
	dark, _ := ctx.Value(prefersDarkKey{}).(bool)
	return dark
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
	case errors.Is(err, theme.ErrInvalidTheme):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "theme must be light or dark"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

func buildSessionResponse(sessionID string, session *game.Session, formatter *timefmt.Formatter) sessionResponse {
	settings := session.Settings()
	current := session.Current()
	elapsed := session.Elapsed()

	response := sessionResponse{
		SessionID: sessionID,
		Settings: settingsResponse{
			MinOperand:    settings.MinOperand,
			MaxOperand:    settings.MaxOperand,
			SessionLength: settings.Length,
			Unlimited:     settings.Unlimited(),
		},
		Current: currentQuestionResponse{
			Stage:           current.Stage,
			OperandA:        current.OperandA,
			OperandB:        current.OperandB,
			SubmittedAnswer: current.SubmittedAnswer,
		},
		CorrectCount:   session.CorrectCount(),
		AnsweredCount:  session.AnsweredCount(),
		Finished:       session.Finished(),
		StartedAt:      session.StartedAt().UTC(),
		ElapsedSeconds: int(elapsed / time.Second),
		Elapsed:        formatter.Duration(elapsed, false),
	}
	if previous, ok := session.Previous(); ok {
		response.Previous = &previous
	}
	return response
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethods ...string) {
	w.Header().Set("Allow", strings.Join(allowedMethods, ", "))
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
