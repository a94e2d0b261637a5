package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/imamik/hubctl/internal/ui"
)

// Terminal implements Prompter on top of huh forms, printing notices
// with the shared output styles.
type Terminal struct{}

// NewTerminal returns the huh-backed prompter used by the CLI.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Interactive reports whether stdin is a terminal. Non-interactive
// invocations cannot answer prompts and should fail fast instead.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func (t *Terminal) Select(ctx context.Context, title string, options []Option) (int, error) {
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		label := o.Label
		if o.Description != "" {
			label = fmt.Sprintf("%s (%s)", o.Label, o.Description)
		}
		opts[i] = huh.NewOption(label, i)
	}

	selected := -1
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(opts...).
				Value(&selected),
		),
	).RunWithContext(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return -1, nil
		}
		return -1, err
	}
	return selected, nil
}

func (t *Terminal) Input(ctx context.Context, title, placeholder string, validate func(string) error) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}

	err := huh.NewForm(huh.NewGroup(input)).RunWithContext(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// Progress prints the title, runs fn and reports how it settled. The
// periodic feedback during long-running calls is the pipeline's own
// heartbeat, not this method's concern.
func (t *Terminal) Progress(ctx context.Context, title string, fn func(context.Context) error) error {
	fmt.Println(ui.Dim(title))
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start).Round(time.Second)
	if err != nil {
		fmt.Println(ui.Failure(fmt.Sprintf("%s failed after %s", title, elapsed)))
		return err
	}
	fmt.Println(ui.Success(fmt.Sprintf("%s done in %s", title, elapsed)))
	return nil
}

func (t *Terminal) Info(msg string) {
	fmt.Println(ui.Info(msg))
}

func (t *Terminal) Error(msg string) {
	fmt.Fprintln(os.Stderr, ui.Failure(msg))
}

// Mock is a scriptable Prompter for tests. Unset funcs fall back to
// cancelled results so pipelines short-circuit instead of panicking.
type Mock struct {
	SelectFunc   func(ctx context.Context, title string, options []Option) (int, error)
	InputFunc    func(ctx context.Context, title, placeholder string, validate func(string) error) (string, error)
	ProgressFunc func(ctx context.Context, title string, fn func(context.Context) error) error

	mu     sync.Mutex
	infos  []string
	errors []string
}

func (m *Mock) Select(ctx context.Context, title string, options []Option) (int, error) {
	if m.SelectFunc == nil {
		return -1, nil
	}
	return m.SelectFunc(ctx, title, options)
}

func (m *Mock) Input(ctx context.Context, title, placeholder string, validate func(string) error) (string, error) {
	if m.InputFunc == nil {
		return "", nil
	}
	return m.InputFunc(ctx, title, placeholder, validate)
}

func (m *Mock) Progress(ctx context.Context, title string, fn func(context.Context) error) error {
	if m.ProgressFunc != nil {
		return m.ProgressFunc(ctx, title, fn)
	}
	return fn(ctx)
}

func (m *Mock) Info(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, msg)
}

func (m *Mock) Error(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

// Infos returns the informational notices shown so far.
func (m *Mock) Infos() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.infos...)
}

// Errors returns the error notices shown so far.
func (m *Mock) Errors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.errors...)
}
