// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type consolePrompter struct {
	in  *bufio.Reader
	out io.Writer

	// fd is the terminal to read secrets from; -1 when input is not a
	// terminal.
	fd int
}

// NewPrompter reads answers from in and writes questions to out. Secrets are
// read without echo when in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &consolePrompter{in: bufio.NewReader(in), out: out, fd: fd}
}

func (p *consolePrompter) Ask(ctx context.Context, question string) (string, error) {
	fmt.Fprint(p.out, question)
	return p.await(ctx, func() (string, error) {
		return p.in.ReadString('\n')
	}, nil)
}

func (p *consolePrompter) AskSecret(ctx context.Context, question string) (string, error) {
	if p.fd < 0 {
		return p.Ask(ctx, question)
	}

	fmt.Fprint(p.out, question)
	state, err := term.GetState(p.fd)
	if err != nil {
		return "", err
	}
	restore := func() { _ = term.Restore(p.fd, state) }

	answer, err := p.await(ctx, func() (string, error) {
		b, err := term.ReadPassword(p.fd)
		return string(b), err
	}, restore)
	fmt.Fprintln(p.out)
	return answer, err
}

// await runs read in the background so a cancelled ctx can abandon a
// blocked read. onCancel runs before returning ErrInterrupted.
func (p *consolePrompter) await(ctx context.Context, read func() (string, error), onCancel func()) (string, error) {
	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := read()
		ch <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		if onCancel != nil {
			onCancel()
		}
		return "", ErrInterrupted
	case res := <-ch:
		line := strings.TrimSpace(res.line)
		if res.err != nil {
			// a final unterminated line is still an answer
			if errors.Is(res.err, io.EOF) && line != "" {
				return line, nil
			}
			if errors.Is(res.err, io.EOF) {
				return "", fmt.Errorf("%w: input closed", ErrInterrupted)
			}
			return "", res.err
		}
		return line, nil
	}
}
