package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"times-table/internal/game"
	"times-table/internal/theme"
	"times-table/internal/timefmt"
)

func (a *API) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	request := createSessionRequest{}
	if r.ContentLength != 0 {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}
	}

	settings := a.defaults
	if request.MinOperand != nil {
		settings.MinOperand = game.ClampOperand(*request.MinOperand)
	}
	if request.MaxOperand != nil {
		settings.MaxOperand = game.ClampOperand(*request.MaxOperand)
	}
	if request.SessionLength != nil {
		settings.Length = *request.SessionLength
	}

	sessionID := a.sessions.Create(settings)
	a.writeSession(w, r, http.StatusCreated, sessionID)
}

func (a *API) HandleSession(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.PathValue("session_id"))

	switch r.Method {
	case http.MethodGet:
		a.writeSession(w, r, http.StatusOK, sessionID)
	case http.MethodDelete:
		if err := a.sessions.Delete(sessionID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodDelete)
	}
}

func (a *API) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	defer r.Body.Close()

	var request answerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if request.Answer == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "answer is required"})
		return
	}

	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	formatter := timefmt.New(resolveLanguage(r))

	var response answerResponse
	err := a.sessions.With(sessionID, func(session *game.Session) error {
		// A finished session rejects the answer; report that separately from
		// a wrong answer.
		response.Accepted = !session.Finished()
		response.Correct = session.Answer(*request.Answer)
		response.Session = buildSessionResponse(sessionID, session, formatter)
		return nil
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (a *API) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	sessionID := strings.TrimSpace(r.PathValue("session_id"))
	formatter := timefmt.New(resolveLanguage(r))

	var response sessionResponse
	err := a.sessions.With(sessionID, func(session *game.Session) error {
		session.Reset()
		response = buildSessionResponse(sessionID, session, formatter)
		return nil
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (a *API) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	sessionID := strings.TrimSpace(r.PathValue("session_id"))

	var questions []game.Question
	err := a.sessions.With(sessionID, func(session *game.Session) error {
		questions = session.History()
		return nil
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{
		SessionID: sessionID,
		Questions: questions,
	})
}

func (a *API) HandleTheme(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Accept-CH", colorSchemeHint)
	w.Header().Add("Vary", colorSchemeHint)
	ctx := withColorSchemeHint(r)

	switch r.Method {
	case http.MethodGet:
		current, err := a.themes.Resolve(ctx)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, themeResponse{Theme: string(current)})
	case http.MethodPut:
		defer r.Body.Close()

		var request themeRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
			return
		}
		requested, err := theme.Parse(request.Theme)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		stored, err := a.themes.Set(ctx, requested)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, themeResponse{Theme: string(stored)})
	case http.MethodDelete:
		current, err := a.themes.Clear(ctx)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, themeResponse{Theme: string(current)})
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (a *API) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	stored, err := a.themes.Toggle(withColorSchemeHint(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: string(stored)})
}

func (a *API) writeSession(w http.ResponseWriter, r *http.Request, status int, sessionID string) {
	formatter := timefmt.New(resolveLanguage(r))

	var response sessionResponse
	err := a.sessions.With(sessionID, func(session *game.Session) error {
		response = buildSessionResponse(sessionID, session, formatter)
		return nil
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, status, response)
}

func resolveLanguage(r *http.Request) language.Tag {
	if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			return timefmt.Match(tag)
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return timefmt.Match(tags...)
		}
	}
	return language.English
}
