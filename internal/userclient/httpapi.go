package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"times-table/internal/game"
)

var ErrServiceUnavailable = errors.New("times table service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	language   string
}

type createSessionRequest struct {
	MinOperand    *float64 `json:"min_operand,omitempty"`
	MaxOperand    *float64 `json:"max_operand,omitempty"`
	SessionLength *int     `json:"session_length,omitempty"`
}

type sessionSettings struct {
	MinOperand    int  `json:"min_operand"`
	MaxOperand    int  `json:"max_operand"`
	SessionLength int  `json:"session_length"`
	Unlimited     bool `json:"unlimited"`
}

type currentQuestion struct {
	Stage    int `json:"stage"`
	OperandA int `json:"operand_a"`
	OperandB int `json:"operand_b"`
}

type sessionState struct {
	SessionID      string          `json:"session_id"`
	Settings       sessionSettings `json:"settings"`
	Current        currentQuestion `json:"current"`
	Previous       *game.Question  `json:"previous,omitempty"`
	CorrectCount   int             `json:"correct_count"`
	AnsweredCount  int             `json:"answered_count"`
	Finished       bool            `json:"finished"`
	ElapsedSeconds int             `json:"elapsed_seconds"`
	Elapsed        string          `json:"elapsed"`
}

type answerRequest struct {
	Answer int `json:"answer"`
}

type answerResult struct {
	Accepted bool         `json:"accepted"`
	Correct  bool         `json:"correct"`
	Session  sessionState `json:"session"`
}

type themePayload struct {
	Theme string `json:"theme"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPClient returns a client for the service at baseURL. lang, when set,
// is sent as Accept-Language so elapsed times come back localized.
func NewHTTPClient(baseURL string, httpClient *http.Client, lang string) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultServer
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		language:   strings.TrimSpace(lang),
	}
}

// CreateSession starts a session. Nil fields fall back to the service
// defaults.
func (c *HTTPClient) CreateSession(ctx context.Context, request createSessionRequest) (sessionState, error) {
	var payload sessionState
	if err := c.doJSON(ctx, http.MethodPost, "/sessions", request, &payload); err != nil {
		return sessionState{}, err
	}
	return payload, nil
}

func (c *HTTPClient) GetSession(ctx context.Context, sessionID string) (sessionState, error) {
	if strings.TrimSpace(sessionID) == "" {
		return sessionState{}, errors.New("session_id is required")
	}

	var payload sessionState
	if err := c.doJSON(ctx, http.MethodGet, sessionPath(sessionID, ""), nil, &payload); err != nil {
		return sessionState{}, err
	}
	return payload, nil
}

func (c *HTTPClient) Answer(ctx context.Context, sessionID string, answer int) (answerResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		return answerResult{}, errors.New("session_id is required")
	}

	var payload answerResult
	if err := c.doJSON(ctx, http.MethodPost, sessionPath(sessionID, "/answers"), answerRequest{Answer: answer}, &payload); err != nil {
		return answerResult{}, err
	}
	return payload, nil
}

func (c *HTTPClient) Reset(ctx context.Context, sessionID string) (sessionState, error) {
	var payload sessionState
	if err := c.doJSON(ctx, http.MethodPost, sessionPath(sessionID, "/reset"), nil, &payload); err != nil {
		return sessionState{}, err
	}
	return payload, nil
}

func (c *HTTPClient) DeleteSession(ctx context.Context, sessionID string) error {
	return c.doJSON(ctx, http.MethodDelete, sessionPath(sessionID, ""), nil, nil)
}

func (c *HTTPClient) GetTheme(ctx context.Context) (string, error) {
	var payload themePayload
	if err := c.doJSON(ctx, http.MethodGet, "/theme", nil, &payload); err != nil {
		return "", err
	}
	return payload.Theme, nil
}

func (c *HTTPClient) SetTheme(ctx context.Context, theme string) (string, error) {
	var payload themePayload
	if err := c.doJSON(ctx, http.MethodPut, "/theme", themePayload{Theme: theme}, &payload); err != nil {
		return "", err
	}
	return payload.Theme, nil
}

func (c *HTTPClient) ToggleTheme(ctx context.Context) (string, error) {
	var payload themePayload
	if err := c.doJSON(ctx, http.MethodPost, "/theme/toggle", nil, &payload); err != nil {
		return "", err
	}
	return payload.Theme, nil
}

// ClearTheme forgets the saved theme and returns the one now in effect.
func (c *HTTPClient) ClearTheme(ctx context.Context) (string, error) {
	var payload themePayload
	if err := c.doJSON(ctx, http.MethodDelete, "/theme", nil, &payload); err != nil {
		return "", err
	}
	return payload.Theme, nil
}

func sessionPath(sessionID, suffix string) string {
	return "/sessions/" + url.PathEscape(strings.TrimSpace(sessionID)) + suffix
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.language != "" {
		request.Header.Set("Accept-Language", c.language)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil || response.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
