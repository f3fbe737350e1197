package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword reads from the terminal without echo. Tests replace it.
var readPassword = term.ReadPassword

const promptMarker = "\n> "

// GetSimpleText shows prompt on w and returns the next line from reader,
// trimmed. A final line without a newline is still returned; an empty
// reader yields io.EOF.
//
//	Price [9.99]
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := io.WriteString(w, prompt+promptMarker); err != nil {
		return "", err
	}
	return readLine(reader)
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	default:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prompts on w and reads a password from stdin with echo off.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := io.WriteString(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	// the terminal swallowed the user's newline
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}

// GetConfirmation asks a yes/no question. Only "y" and "yes" (any case)
// confirm; anything else, including EOF, declines.
func GetConfirmation(reader *bufio.Reader, prompt string, w io.Writer) bool {
	answer, err := GetSimpleText(reader, prompt+" [y/N]", w)
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
