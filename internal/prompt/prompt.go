// Package prompt defines the interactive surface consumed by the
// provisioning pipelines and its terminal implementation.
package prompt

import "context"

// Option is a single entry in a pick list.
type Option struct {
	Label       string
	Description string
}

// Prompter is the interactive surface consumed by the provisioning
// pipelines. Implementations signal "nothing chosen" without an error:
// Select returns -1 and Input returns "" when the user escapes the
// prompt. The surface cannot tell a genuine escape apart from a
// transient empty result; PickOne layers that heuristic on top.
type Prompter interface {
	// Select shows a single-choice list and returns the chosen index,
	// or -1 if nothing was chosen.
	Select(ctx context.Context, title string, options []Option) (int, error)

	// Input shows a free-text prompt. The validator blocks submission
	// of invalid values; a cancelled prompt returns "".
	Input(ctx context.Context, title, placeholder string, validate func(string) error) (string, error)

	// Progress runs fn while displaying title to the user.
	Progress(ctx context.Context, title string, fn func(context.Context) error) error

	// Info shows an informational notice.
	Info(msg string)

	// Error shows a blocking error notice.
	Error(msg string)
}
