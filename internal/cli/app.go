package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"

	"times-table/internal/game"
	"times-table/internal/prompt"
	"times-table/internal/random"
	"times-table/internal/timefmt"
)

type Config struct {
	Settings game.Settings
	Language language.Tag
	Source   random.Source
	Clock    func() time.Time
}

func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	session := game.New(cfg.Settings, game.WithSource(cfg.Source), game.WithClock(cfg.Clock))
	formatter := timefmt.New(cfg.Language)
	reader := bufio.NewReader(in)

	printIntro(out, session.Settings())

	for !session.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		question := session.Current()
		printQuestion(out, question)

		value, err := prompt.ReadInt(reader, out, prompt.DefaultAttempts)
		if err != nil {
			if errors.Is(err, prompt.ErrQuit) || errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		if session.Answer(value) {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Wrong. %d x %d = %d\n", question.OperandA, question.OperandB, question.ExpectedProduct)
		}
	}

	fmt.Fprintf(out, "\nFinal score: %d/%d\n", session.CorrectCount(), session.AnsweredCount())
	fmt.Fprintf(out, "Time: %s\n", formatter.Duration(session.Elapsed(), false))
	return nil
}

func printIntro(out io.Writer, settings game.Settings) {
	fmt.Fprintf(out, "Times table practice: factors %d to %d.\n", settings.MinOperand, settings.MaxOperand)
	if settings.Unlimited() {
		fmt.Fprintln(out, "Unlimited questions. Type q to stop.")
		return
	}
	fmt.Fprintf(out, "%d questions. Type q to stop early.\n", settings.Length)
}

func printQuestion(out io.Writer, question game.Question) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d: %d x %d = ? ", question.Stage, question.OperandA, question.OperandB)
}
