package game

import (
	"math"
	"testing"
	"time"

	"times-table/internal/random"
)

func newTestSession(t *testing.T, settings Settings) *Session {
	t.Helper()
	return New(settings, WithSource(random.New(7)))
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestOperandsStayWithinBounds(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{name: "classic table", settings: Settings{MinOperand: 1, MaxOperand: 10}},
		{name: "zero based", settings: Settings{MinOperand: 0, MaxOperand: 3}},
		{name: "single value", settings: Settings{MinOperand: 12, MaxOperand: 12}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			session := newTestSession(t, tc.settings)
			for i := 0; i < 500; i++ {
				q := session.Current()
				for _, operand := range []int{q.OperandA, q.OperandB} {
					if operand < tc.settings.MinOperand || operand > tc.settings.MaxOperand {
						t.Fatalf("operand %d outside [%d, %d]", operand, tc.settings.MinOperand, tc.settings.MaxOperand)
					}
				}
				if q.ExpectedProduct != q.OperandA*q.OperandB {
					t.Fatalf("product = %d, want %d", q.ExpectedProduct, q.OperandA*q.OperandB)
				}
				session.Answer(q.ExpectedProduct)
			}
		})
	}
}

func TestNewNormalizesBounds(t *testing.T) {
	tests := []struct {
		name     string
		in       Settings
		wantMin  int
		wantMax  int
		wantSize int
	}{
		{name: "negative min", in: Settings{MinOperand: -4, MaxOperand: 6, Length: 3}, wantMin: 0, wantMax: 6, wantSize: 3},
		{name: "both negative", in: Settings{MinOperand: -4, MaxOperand: -1}, wantMin: 0, wantMax: 0},
		{name: "reversed", in: Settings{MinOperand: 9, MaxOperand: 2, Length: -1}, wantMin: 2, wantMax: 9, wantSize: -1},
		{name: "huge max", in: Settings{MinOperand: 0, MaxOperand: math.MaxInt, Length: 1}, wantMin: 0, wantMax: MaxOperand, wantSize: 1},
		{name: "huge both", in: Settings{MinOperand: 1 << 40, MaxOperand: 1 << 40}, wantMin: MaxOperand, wantMax: MaxOperand},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := newTestSession(t, tc.in).Settings()
			if got.MinOperand != tc.wantMin || got.MaxOperand != tc.wantMax || got.Length != tc.wantSize {
				t.Fatalf("settings = %+v, want min=%d max=%d length=%d", got, tc.wantMin, tc.wantMax, tc.wantSize)
			}
		})
	}
}

func TestHugeBoundsKeepExactProduct(t *testing.T) {
	for _, settings := range []Settings{
		{MinOperand: 0, MaxOperand: math.MaxInt, Length: 3},
		{MinOperand: 1 << 40, MaxOperand: 1 << 40, Length: 3},
	} {
		session := New(settings, WithSource(random.New(7)))
		for !session.Finished() {
			q := session.Current()
			if q.OperandA < 0 || q.OperandA > MaxOperand || q.OperandB < 0 || q.OperandB > MaxOperand {
				t.Fatalf("operands out of range: %+v", q)
			}
			if q.OperandB != 0 && q.ExpectedProduct/q.OperandB != q.OperandA {
				t.Fatalf("product overflowed: %+v", q)
			}
			if q.ExpectedProduct < 0 {
				t.Fatalf("negative product: %+v", q)
			}
			session.Answer(q.ExpectedProduct)
		}
	}
}

func TestClampOperand(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{in: 3.9, want: 3},
		{in: 0, want: 0},
		{in: -2.5, want: 0},
		{in: 12, want: 12},
	}

	for _, tc := range tests {
		if got := ClampOperand(tc.in); got != tc.want {
			t.Fatalf("ClampOperand(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	session := newTestSession(t, Settings{MinOperand: 1, MaxOperand: 5, Length: 2})
	session.Answer(session.Current().ExpectedProduct)
	session.Answer(-1)
	if !session.Finished() {
		t.Fatalf("expected session to be finished before reset")
	}

	session.Reset()

	if session.CorrectCount() != 0 {
		t.Fatalf("correct count = %d, want 0", session.CorrectCount())
	}
	if len(session.History()) != 0 {
		t.Fatalf("history length = %d, want 0", len(session.History()))
	}
	if session.Finished() {
		t.Fatalf("expected session not finished after reset")
	}
	if got := session.Current().Stage; got != 1 {
		t.Fatalf("stage = %d, want 1", got)
	}
	if session.Current().Answered() {
		t.Fatalf("expected fresh question to be unanswered")
	}
	if _, ok := session.Previous(); ok {
		t.Fatalf("expected no previous question after reset")
	}
}

func TestFixedLengthSessionFinishes(t *testing.T) {
	session := newTestSession(t, Settings{MinOperand: 1, MaxOperand: 9, Length: 3})

	for i := 0; i < 3; i++ {
		if session.Finished() {
			t.Fatalf("finished early after %d answers", i)
		}
		session.Answer(session.Current().ExpectedProduct)
	}
	if !session.Finished() {
		t.Fatalf("expected finished after 3 answers")
	}

	last := session.Current()
	if session.Answer(last.ExpectedProduct) {
		t.Fatalf("expected answer on finished session to return false")
	}
	if got := len(session.History()); got != 3 {
		t.Fatalf("history length = %d, want 3", got)
	}
	if got := session.CorrectCount(); got != 3 {
		t.Fatalf("correct count = %d, want 3", got)
	}
	current := session.Current()
	if current.Stage != 3 || current.OperandA != last.OperandA || current.OperandB != last.OperandB {
		t.Fatalf("current question changed after finish: %+v, was %+v", current, last)
	}
}

func TestNextQuestionIsNoopWhenFinished(t *testing.T) {
	session := newTestSession(t, Settings{MinOperand: 2, MaxOperand: 2, Length: 1})
	session.Answer(4)

	session.NextQuestion()

	if got := session.Current().Stage; got != 1 {
		t.Fatalf("stage = %d, want 1", got)
	}
}

func TestUnlimitedSessionNeverFinishes(t *testing.T) {
	for _, length := range []int{0, -5} {
		session := newTestSession(t, Settings{MinOperand: 0, MaxOperand: 12, Length: length})
		for i := 0; i < 100; i++ {
			session.Answer(0)
		}
		if session.Finished() {
			t.Fatalf("length %d: expected unlimited session to keep running", length)
		}
		if got := len(session.History()); got != 100 {
			t.Fatalf("length %d: history length = %d, want 100", length, got)
		}
		if got := session.Current().Stage; got != 101 {
			t.Fatalf("length %d: stage = %d, want 101", length, got)
		}
	}
}

func TestAnswerCorrectnessIsExact(t *testing.T) {
	session := newTestSession(t, Settings{MinOperand: 1, MaxOperand: 12})

	if !session.Answer(session.Current().ExpectedProduct) {
		t.Fatalf("expected exact product to be correct")
	}
	if session.Answer(session.Current().ExpectedProduct + 1) {
		t.Fatalf("expected product+1 to be wrong")
	}
}

func TestCorrectCountMatchesCorrectSubmissions(t *testing.T) {
	session := newTestSession(t, Settings{MinOperand: 0, MaxOperand: 9})

	want := 0
	for i := 0; i < 40; i++ {
		value := session.Current().ExpectedProduct
		if i%3 == 0 {
			value++
		} else {
			want++
		}
		session.Answer(value)
	}

	if got := session.CorrectCount(); got != want {
		t.Fatalf("correct count = %d, want %d", got, want)
	}
	if session.CorrectCount() > len(session.History()) {
		t.Fatalf("correct count exceeds history length")
	}
}

func TestStageTracksHistory(t *testing.T) {
	session := newTestSession(t, Settings{MinOperand: 1, MaxOperand: 4, Length: 10})
	for !session.Finished() {
		if got, want := session.Current().Stage, len(session.History())+1; got != want {
			t.Fatalf("stage = %d, want %d", got, want)
		}
		session.Answer(1)
	}

	for idx, q := range session.History() {
		if q.Stage != idx+1 {
			t.Fatalf("history[%d].Stage = %d, want %d", idx, q.Stage, idx+1)
		}
		if q.SubmittedAnswer == nil || *q.SubmittedAnswer != 1 {
			t.Fatalf("history[%d] submitted answer = %v, want 1", idx, q.SubmittedAnswer)
		}
	}
}

func TestHistoryIsSnapshotted(t *testing.T) {
	session := newTestSession(t, Settings{MinOperand: 2, MaxOperand: 2})
	session.Answer(4)

	history := session.History()
	*history[0].SubmittedAnswer = 99
	history[0].OperandA = 99

	prev, ok := session.Previous()
	if !ok {
		t.Fatalf("expected previous question")
	}
	*prev.SubmittedAnswer = 77

	again := session.History()
	if *again[0].SubmittedAnswer != 4 || again[0].OperandA != 2 {
		t.Fatalf("history was mutated through a returned copy: %+v", again[0])
	}

	current := session.Current()
	if current.Answered() {
		t.Fatalf("expected new current question to be unanswered")
	}
}

func TestDegenerateRangeScenario(t *testing.T) {
	session := newTestSession(t, Settings{MinOperand: 2, MaxOperand: 2, Length: 2})

	q := session.Current()
	if q.OperandA != 2 || q.OperandB != 2 || q.ExpectedProduct != 4 {
		t.Fatalf("unexpected first question: %+v", q)
	}

	if !session.Answer(4) {
		t.Fatalf("expected answer 4 to be correct")
	}
	if session.CorrectCount() != 1 || session.Finished() {
		t.Fatalf("after first answer: correct=%d finished=%t", session.CorrectCount(), session.Finished())
	}

	if session.Answer(5) {
		t.Fatalf("expected answer 5 to be wrong")
	}
	if session.CorrectCount() != 1 || !session.Finished() {
		t.Fatalf("after second answer: correct=%d finished=%t", session.CorrectCount(), session.Finished())
	}

	prev, ok := session.Previous()
	if !ok || prev.Stage != 2 || *prev.SubmittedAnswer != 5 {
		t.Fatalf("unexpected previous question: %+v", prev)
	}
}

func TestElapsedStopsWhenFinished(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	session := New(Settings{MinOperand: 1, MaxOperand: 3, Length: 2}, WithSource(random.New(3)), WithClock(clock.Now))

	clock.Advance(20 * time.Second)
	if got := session.Elapsed(); got != 20*time.Second {
		t.Fatalf("running elapsed = %s, want 20s", got)
	}

	session.Answer(0)
	clock.Advance(45 * time.Second)
	session.Answer(0)
	clock.Advance(time.Hour)

	if got := session.Elapsed(); got != 65*time.Second {
		t.Fatalf("finished elapsed = %s, want 1m5s", got)
	}

	session.Reset()
	if got := session.Elapsed(); got != 0 {
		t.Fatalf("elapsed after reset = %s, want 0", got)
	}
}
