package game

import "math"

// Question is one round of the quiz.
type Question struct {
	Stage           int  `json:"stage"`
	OperandA        int  `json:"operand_a"`
	OperandB        int  `json:"operand_b"`
	ExpectedProduct int  `json:"expected_product"`
	SubmittedAnswer *int `json:"submitted_answer,omitempty"`
}

// Answered reports whether the player has responded to q.
func (q Question) Answered() bool {
	return q.SubmittedAnswer != nil
}

// snapshot copies q, including the submitted answer, so later changes to the
// live question cannot reach history.
func (q Question) snapshot() Question {
	if q.SubmittedAnswer != nil {
		answer := *q.SubmittedAnswer
		q.SubmittedAnswer = &answer
	}
	return q
}

// Settings are fixed for the lifetime of a Session. Length <= 0 means the
// session never finishes.
type Settings struct {
	MinOperand int `json:"min_operand"`
	MaxOperand int `json:"max_operand"`
	Length     int `json:"session_length"`
}

// Unlimited reports whether the session has no fixed number of rounds.
func (s Settings) Unlimited() bool {
	return s.Length <= 0
}

// MaxOperand is the largest allowed bound. Products of two operands up to
// this value fit in an int.
const MaxOperand = math.MaxInt32

// normalize clamps both bounds to [0, MaxOperand] and orders them.
func (s Settings) normalize() Settings {
	s.MinOperand = clampBound(s.MinOperand)
	s.MaxOperand = clampBound(s.MaxOperand)
	if s.MinOperand > s.MaxOperand {
		s.MinOperand, s.MaxOperand = s.MaxOperand, s.MinOperand
	}
	return s
}

func clampBound(v int) int {
	switch {
	case v < 0:
		return 0
	case v > MaxOperand:
		return MaxOperand
	default:
		return v
	}
}

// ClampOperand floors v and clamps it to a non-negative int. NaN maps to 0.
func ClampOperand(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= MaxOperand {
		return MaxOperand
	}
	return int(math.Floor(v))
}
