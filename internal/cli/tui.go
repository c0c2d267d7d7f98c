package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/datastripes/pkg/errors"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	inputStyle  = lipgloss.NewStyle().Foreground(colorText)
	hintStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// defaultPrompt is shown before rendering.
const defaultPrompt = "Press enter to render, or type anything to abort"

// ShouldProceed reports whether the confirmation input allows rendering.
// Only an empty answer proceeds.
func ShouldProceed(input string) bool {
	return input == ""
}

// =============================================================================
// ConfirmModel - Enter-to-proceed gate
// =============================================================================

// ConfirmModel is the bubbletea model for the render confirmation.
// Typed text accumulates in Input; enter submits it.
type ConfirmModel struct {
	Prompt    string
	Input     string
	Submitted bool
	Cancelled bool
}

// NewConfirmModel creates a confirmation model with the given prompt.
func NewConfirmModel(prompt string) ConfirmModel {
	return ConfirmModel{Prompt: prompt}
}

// Proceed reports whether the submitted answer allows rendering.
func (m ConfirmModel) Proceed() bool {
	return m.Submitted && !m.Cancelled && ShouldProceed(m.Input)
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.Cancelled = true
		return m, tea.Quit
	case tea.KeyEnter, tea.KeyCtrlJ:
		m.Submitted = true
		return m, tea.Quit
	case tea.KeyBackspace:
		if r := []rune(m.Input); len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.Input += " "
	case tea.KeyRunes:
		m.Input += string(key.Runes)
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.Submitted || m.Cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.Prompt))
	b.WriteString(hintStyle.Render(" ⏎ "))
	b.WriteString(inputStyle.Render(m.Input))
	b.WriteString("▏\n")
	return b.String()
}

// confirm asks whether to render. A terminal gets the bubbletea prompt;
// anything else (pipes, files, /dev/null) is read as a single line.
// Ctrl+C or Esc returns context.Canceled so the process exits like an interrupt.
func confirm(ctx context.Context, in io.Reader, out io.Writer) (bool, error) {
	if !isTerminal(in) {
		return confirmLine(ctx, in, out)
	}
	p := tea.NewProgram(NewConfirmModel(defaultPrompt),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, err
	}
	m := final.(ConfirmModel)
	if m.Cancelled {
		return false, context.Canceled
	}
	return m.Proceed(), nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// confirmLine reads one answer line. A final line without newline counts;
// input that ends before any answer is an error, matching a closed stdin.
func confirmLine(ctx context.Context, in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, promptStyle.Render(defaultPrompt)+hintStyle.Render(" ⏎ "))

	type answer struct {
		line string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		ch <- answer{line, err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-ch:
		if a.err != nil && (a.err != io.EOF || a.line == "") {
			if a.err == io.EOF {
				return false, errors.New(errors.ErrCodeInvalidInput, "no confirmation answer: input closed")
			}
			return false, errors.Wrap(errors.ErrCodeInvalidInput, a.err, "read confirmation")
		}
		fmt.Fprintln(out)
		return ShouldProceed(strings.TrimRight(a.line, "\r\n")), nil
	}
}
