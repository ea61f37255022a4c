package httpapi

import (
	"time"

	"times-table/internal/game"
)

type createSessionRequest struct {
	MinOperand    *float64 `json:"min_operand,omitempty"`
	MaxOperand    *float64 `json:"max_operand,omitempty"`
	SessionLength *int     `json:"session_length,omitempty"`
}

type settingsResponse struct {
	MinOperand    int  `json:"min_operand"`
	MaxOperand    int  `json:"max_operand"`
	SessionLength int  `json:"session_length"`
	Unlimited     bool `json:"unlimited"`
}

// currentQuestionResponse leaves out the expected product of the open
// question.
type currentQuestionResponse struct {
	Stage           int  `json:"stage"`
	OperandA        int  `json:"operand_a"`
	OperandB        int  `json:"operand_b"`
	SubmittedAnswer *int `json:"submitted_answer,omitempty"`
}

type sessionResponse struct {
	SessionID      string                  `json:"session_id"`
	Settings       settingsResponse        `json:"settings"`
	Current        currentQuestionResponse `json:"current"`
	Previous       *game.Question          `json:"previous,omitempty"`
	CorrectCount   int                     `json:"correct_count"`
	AnsweredCount  int                     `json:"answered_count"`
	Finished       bool                    `json:"finished"`
	StartedAt      time.Time               `json:"started_at"`
	ElapsedSeconds int                     `json:"elapsed_seconds"`
	Elapsed        string                  `json:"elapsed"`
}

type answerRequest struct {
	Answer *int `json:"answer"`
}

type answerResponse struct {
	Accepted bool            `json:"accepted"`
	Correct  bool            `json:"correct"`
	Session  sessionResponse `json:"session"`
}

type historyResponse struct {
	SessionID string          `json:"session_id"`
	Questions []game.Question `json:"questions"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

type errorResponse struct {
	Error string `json:"error"`
}
