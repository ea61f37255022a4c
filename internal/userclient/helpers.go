package userclient

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"times-table/internal/game"
)

// parsePlayArgs builds the create request for "play [min max [length]]".
// Without arguments the configured defaults are used.
func parsePlayArgs(args []string, defaults game.Settings) (createSessionRequest, error) {
	minOperand := float64(defaults.MinOperand)
	maxOperand := float64(defaults.MaxOperand)
	length := defaults.Length

	switch len(args) {
	case 0:
	case 2, 3:
		var err error
		if minOperand, err = strconv.ParseFloat(args[0], 64); err != nil {
			return createSessionRequest{}, errors.New("min must be a number")
		}
		if maxOperand, err = strconv.ParseFloat(args[1], 64); err != nil {
			return createSessionRequest{}, errors.New("max must be a number")
		}
		if len(args) == 3 {
			if length, err = strconv.Atoi(args[2]); err != nil {
				return createSessionRequest{}, errors.New("length must be an integer")
			}
		}
	default:
		return createSessionRequest{}, errors.New("expected min and max")
	}

	return createSessionRequest{
		MinOperand:    &minOperand,
		MaxOperand:    &maxOperand,
		SessionLength: &length,
	}, nil
}

func printIntro(out io.Writer, settings sessionSettings) {
	fmt.Fprintf(out, "Factors %d to %d. ", settings.MinOperand, settings.MaxOperand)
	if settings.Unlimited {
		fmt.Fprintln(out, "Unlimited questions, type q to stop.")
		return
	}
	fmt.Fprintf(out, "%d questions, type q to stop early.\n", settings.SessionLength)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  help")
	fmt.Fprintln(out, "  play [min max [length]]")
	fmt.Fprintln(out, "  theme [dark|light|toggle|system]")
	fmt.Fprintln(out, "  exit")
}

func describeClientError(err error, serverURL string) error {
	if errors.Is(err, ErrServiceUnavailable) {
		return fmt.Errorf("times table service unavailable at %s", serverURL)
	}
	return err
}
