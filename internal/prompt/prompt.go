// Package prompt reads whole-number answers typed by a player.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultAttempts is how many invalid lines ReadInt tolerates when the
// caller passes a non-positive limit.
const DefaultAttempts = 3

// ErrQuit is returned when the player types q, quit or exit, or runs out of
// attempts.
var ErrQuit = errors.New("quit")

// ReadInt reads an integer answer, re-prompting on invalid input. After
// maxAttempts invalid lines it gives up with ErrQuit. io.EOF is returned
// when input ends before an answer.
func ReadInt(reader *bufio.Reader, out io.Writer, maxAttempts int) (int, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		line, err := reader.ReadString('\n')
		if err != nil && (strings.TrimSpace(line) == "" || !errors.Is(err, io.EOF)) {
			return 0, err
		}

		value, parseErr := ParseInt(line)
		if parseErr == nil || errors.Is(parseErr, ErrQuit) {
			return value, parseErr
		}
		if err != nil {
			return 0, err
		}

		if remaining := maxAttempts - attempt; remaining > 0 {
			fmt.Fprintf(out, "Invalid input. Please enter a whole number (%d attempts left): ", remaining)
		}
	}

	fmt.Fprintln(out, "\nToo many invalid answers.")
	return 0, ErrQuit
}

// ParseInt parses one answer line. q, quit and exit in any case yield
// ErrQuit.
func ParseInt(line string) (int, error) {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return 0, ErrQuit
	}
	return strconv.Atoi(line)
}
