// Package game implements the times-table quiz state machine.
//
// A Session is not safe for concurrent use. Surfaces that serve several
// callers hold sessions in a Registry, which serialises access per session.
package game

import (
	"time"

	"times-table/internal/random"
)

// Session is one playthrough of a fixed-length or unlimited quiz.
type Session struct {
	settings Settings
	src      random.Source
	now      func() time.Time

	current      Question
	history      []Question
	correctCount int
	finished     bool

	startedAt  time.Time
	finishedAt time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithSource sets the generator used to draw operands.
func WithSource(src random.Source) Option {
	return func(s *Session) {
		if src != nil {
			s.src = src
		}
	}
}

// WithClock sets the clock used for timing a run.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a session and generates its first question. Negative bounds
// are clamped to zero and reversed bounds are swapped.
func New(settings Settings, opts ...Option) *Session {
	s := &Session{
		settings: settings.normalize(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = random.NewSource()
	}

	s.Reset()
	return s
}

// Reset discards all progress and starts again at stage 1.
func (s *Session) Reset() {
	s.current = Question{Stage: 0}
	s.history = nil
	s.correctCount = 0
	s.finished = false
	s.startedAt = s.now()
	s.finishedAt = time.Time{}
	s.NextQuestion()
}

// NextQuestion draws fresh operands and advances the stage. It does nothing
// once the session is finished.
func (s *Session) NextQuestion() {
	if s.finished {
		return
	}

	a := random.Int(s.src, s.settings.MinOperand, s.settings.MaxOperand)
	b := random.Int(s.src, s.settings.MinOperand, s.settings.MaxOperand)
	s.current = Question{
		Stage:           s.current.Stage + 1,
		OperandA:        a,
		OperandB:        b,
		ExpectedProduct: a * b,
	}
}

// Answer records value against the current question and reports whether it
// was correct. A finished session ignores the call and returns false.
func (s *Session) Answer(value int) bool {
	if s.finished {
		return false
	}

	s.current.SubmittedAnswer = &value
	correct := value == s.current.ExpectedProduct
	if correct {
		s.correctCount++
	}
	s.history = append(s.history, s.current.snapshot())

	if !s.settings.Unlimited() && s.current.Stage >= s.settings.Length {
		s.finished = true
		s.finishedAt = s.now()
		return correct
	}

	s.NextQuestion()
	return correct
}

// Finished reports whether the configured number of rounds has been played.
func (s *Session) Finished() bool {
	return s.finished
}

// Current returns the active question. After the session finishes this is
// the last answered question.
func (s *Session) Current() Question {
	return s.current.snapshot()
}

// Previous returns the most recently answered question.
func (s *Session) Previous() (Question, bool) {
	if len(s.history) == 0 {
		return Question{}, false
	}
	return s.history[len(s.history)-1].snapshot(), true
}

// CorrectCount returns the number of correct answers so far.
func (s *Session) CorrectCount() int {
	return s.correctCount
}

// History returns the answered questions in play order.
func (s *Session) History() []Question {
	out := make([]Question, len(s.history))
	for idx, q := range s.history {
		out[idx] = q.snapshot()
	}
	return out
}

// AnsweredCount returns the number of answered questions.
func (s *Session) AnsweredCount() int {
	return len(s.history)
}

// Settings returns the normalized settings the session was created with.
func (s *Session) Settings() Settings {
	return s.settings
}

// StartedAt returns when the current run began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Elapsed returns the duration of a finished run, or the time spent so far
// on a running one.
func (s *Session) Elapsed() time.Duration {
	if s.finished {
		return s.finishedAt.Sub(s.startedAt)
	}
	return s.now().Sub(s.startedAt)
}
