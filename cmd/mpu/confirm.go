package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	answerConfirm = "confirm"
	answerQuit    = "quit"
)

// promptConfirmer asks on the terminal until the user types confirm or quit.
type promptConfirmer struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPromptConfirmer(in io.Reader, out io.Writer) *promptConfirmer {
	return &promptConfirmer{in: bufio.NewScanner(in), out: out}
}

func (c *promptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	fmt.Fprintln(c.out, prompt)
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		fmt.Fprintf(c.out, "Type %q to proceed or %q to abort: ", answerConfirm, answerQuit)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return false, fmt.Errorf("read answer: %w", err)
			}
			return false, nil
		}

		switch strings.ToLower(strings.TrimSpace(c.in.Text())) {
		case answerConfirm:
			return true, nil
		case answerQuit:
			return false, nil
		}
	}
}
