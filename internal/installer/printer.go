// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 60

// printer renders the installer's console output. Colours are dropped
// automatically when out is not a terminal.
type printer struct {
	out io.Writer

	title lipgloss.Style
	step  lipgloss.Style
	ok    lipgloss.Style
	warn  lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
	code  lipgloss.Style
}

func newPrinter(out io.Writer) *printer {
	r := lipgloss.NewRenderer(out)
	return &printer{
		out:   out,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		step:  r.NewStyle().Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("10")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("11")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted: r.NewStyle().Faint(true),
		code:  r.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

func (p *printer) Header(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, p.title.Render(title))
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out)
}

func (p *printer) Step(n int, title string) {
	fmt.Fprintln(p.out, p.step.Render(fmt.Sprintf("Step %d: %s", n, title)))
	fmt.Fprintln(p.out, strings.Repeat("-", 40))
}

func (p *printer) Line(format string, args ...any) {
	fmt.Fprintf(p.out, "   "+format+"\n", args...)
}

func (p *printer) Blank() {
	fmt.Fprintln(p.out)
}

func (p *printer) OK(format string, args ...any) {
	p.Line("%s", p.ok.Render("[ok] "+fmt.Sprintf(format, args...)))
}

func (p *printer) Warn(format string, args ...any) {
	p.Line("%s", p.warn.Render("[warn] "+fmt.Sprintf(format, args...)))
}

func (p *printer) Fail(format string, args ...any) {
	p.Line("%s", p.fail.Render("[error] "+fmt.Sprintf(format, args...)))
}

func (p *printer) Muted(format string, args ...any) {
	p.Line("%s", p.muted.Render(fmt.Sprintf(format, args...)))
}

// Block prints a multi-line snippet indented and framed by rules.
func (p *printer) Block(text string) {
	rule := "   " + strings.Repeat("-", 50)
	fmt.Fprintln(p.out, rule)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintln(p.out, "      "+p.code.Render(line))
	}
	fmt.Fprintln(p.out, rule)
}
