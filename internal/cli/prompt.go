package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirm writes question to w and reads one line from r.
// It reports true only if the line, without its line terminator, equals
// "yes" ignoring case. End of input without an answer is a refusal.
func Confirm(r io.Reader, w io.Writer, question string) (bool, error) {
	fmt.Fprint(w, question)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return strings.EqualFold(line, "yes"), nil
}
