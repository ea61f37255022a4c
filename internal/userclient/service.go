package userclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"times-table/internal/game"
	"times-table/internal/prompt"
)

const (
	defaultServer            = "http://127.0.0.1:8080"
	defaultHTTPTimeout       = 5 * time.Second
	defaultCleanupTimeout    = 2 * time.Second
	defaultMaxInvalidAnswers = prompt.DefaultAttempts
)

type Config struct {
	ServerURL         string
	Language          string
	Settings          game.Settings
	MaxInvalidAnswers int
	HTTPTimeout       time.Duration
}

func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		serverURL = defaultServer
	}

	maxInvalidAnswers := cfg.MaxInvalidAnswers
	if maxInvalidAnswers <= 0 {
		maxInvalidAnswers = defaultMaxInvalidAnswers
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	client := NewHTTPClient(serverURL, &http.Client{Timeout: timeout}, cfg.Language)
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "timestable-client\nserver=%s\n\n", serverURL)
	printHelp(out)

	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		command := strings.ToLower(args[0])

		switch command {
		case "help":
			printHelp(out)
		case "exit", "quit":
			return nil
		case "play":
			request, parseErr := parsePlayArgs(args[1:], cfg.Settings)
			if parseErr != nil {
				fmt.Fprintf(out, "invalid play arguments: %v\n", parseErr)
				fmt.Fprintln(out, "usage: play [min max [length]]")
				continue
			}
			if err := runPlay(ctx, reader, out, client, request, maxInvalidAnswers); err != nil {
				fmt.Fprintf(out, "error: %v\n", describeClientError(err, serverURL))
			}
		case "theme":
			if err := runTheme(ctx, out, client, args[1:]); err != nil {
				fmt.Fprintf(out, "error: %v\n", describeClientError(err, serverURL))
			}
		default:
			fmt.Fprintln(out, "unknown command. type 'help' for usage.")
		}
	}
}

func runPlay(ctx context.Context, reader *bufio.Reader, out io.Writer, client *HTTPClient, request createSessionRequest, maxInvalidAnswers int) error {
	state, err := client.CreateSession(ctx, request)
	if err != nil {
		return err
	}
	defer cleanupSession(client, state.SessionID)

	printIntro(out, state.Settings)

	for !state.Finished {
		fmt.Fprintf(out, "\nQ%d: %d x %d = ? ", state.Current.Stage, state.Current.OperandA, state.Current.OperandB)

		answer, promptErr := prompt.ReadInt(reader, out, maxInvalidAnswers)
		if promptErr != nil {
			if !errors.Is(promptErr, prompt.ErrQuit) && !errors.Is(promptErr, io.EOF) {
				return promptErr
			}
			// Refresh so the summary reflects the elapsed time at the stop.
			if latest, getErr := client.GetSession(ctx, state.SessionID); getErr == nil {
				state = latest
			}
			break
		}

		result, answerErr := client.Answer(ctx, state.SessionID, answer)
		if answerErr != nil {
			return answerErr
		}
		if !result.Accepted {
			state = result.Session
			break
		}

		if result.Correct {
			fmt.Fprintln(out, "Correct!")
		} else if previous := result.Session.Previous; previous != nil {
			fmt.Fprintf(out, "Wrong. %d x %d = %d\n", previous.OperandA, previous.OperandB, previous.ExpectedProduct)
		} else {
			fmt.Fprintln(out, "Wrong.")
		}
		state = result.Session
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Score: %d/%d\n", state.CorrectCount, state.AnsweredCount)
	if state.Elapsed != "" {
		fmt.Fprintf(out, "Time: %s\n", state.Elapsed)
	}
	return nil
}

// cleanupSession drops the finished session from the service. Failures only
// leave an idle session behind, so they are ignored.
func cleanupSession(client *HTTPClient, sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultCleanupTimeout)
	defer cancel()
	_ = client.DeleteSession(ctx, sessionID)
}

func runTheme(ctx context.Context, out io.Writer, client *HTTPClient, args []string) error {
	var (
		current string
		err     error
	)

	switch {
	case len(args) == 0:
		current, err = client.GetTheme(ctx)
	case len(args) == 1 && strings.EqualFold(args[0], "toggle"):
		current, err = client.ToggleTheme(ctx)
	case len(args) == 1 && strings.EqualFold(args[0], "system"):
		current, err = client.ClearTheme(ctx)
	case len(args) == 1:
		current, err = client.SetTheme(ctx, args[0])
	default:
		fmt.Fprintln(out, "usage: theme [dark|light|toggle|system]")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "theme=%s\n", current)
	return nil
}
