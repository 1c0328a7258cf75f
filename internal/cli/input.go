package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/busdepot/internal/timex"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints prompt to w and reads one line from reader with
// surrounding whitespace trimmed. A final line without a newline is
// returned as is; EOF with nothing read is returned as io.EOF.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password. On a terminal (fd >= 0) the input is not
// echoed; otherwise it is read as a plain line.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer, fd int) (string, error) {
	if fd < 0 {
		return GetSimpleText(reader, prompt, w)
	}
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	defer clear(pw)
	return string(pw), nil
}

func (a *App) text(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) password(prompt string) (string, error) {
	return GetPassword(a.reader, prompt, a.out, a.passwordFd)
}

// clock reads a required HH:mm value. ok is false when the input was
// rejected; the message has been printed already.
func (a *App) clock(prompt string) (c timex.Clock, ok bool, err error) {
	s, err := a.text(prompt)
	if err != nil {
		return timex.Clock{}, false, err
	}
	c, perr := timex.ParseClock(s)
	if perr != nil {
		a.fail("Invalid time format.")
		return timex.Clock{}, false, nil
	}
	return c, true, nil
}

// optionalClock reads an HH:mm value that may be left blank. Blank and
// invalid input both return nil; invalid input is reported.
func (a *App) optionalClock(prompt string) (*timex.Clock, error) {
	s, err := a.text(prompt)
	if err != nil || s == "" {
		return nil, err
	}
	c, perr := timex.ParseClock(s)
	if perr != nil {
		a.fail("Invalid time format.")
		return nil, nil
	}
	return &c, nil
}

// optionalText returns nil for blank input.
func (a *App) optionalText(prompt string) (*string, error) {
	s, err := a.text(prompt)
	if err != nil || s == "" {
		return nil, err
	}
	return &s, nil
}
