package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/roveo/dirnav/internal/terminal"
)

// ErrNewTabUnsupported is returned when a new tab is requested from the shell host
var ErrNewTabUnsupported = errors.New("the shell host cannot open tabs")

// Host prints lines for the calling shell to eval. It is its own window,
// tab and session: there is always exactly one of each.
type Host struct {
	Out io.Writer
}

// New returns a Host writing to out
func New(out io.Writer) *Host {
	return &Host{Out: out}
}

// CurrentWindow returns the host itself; the calling shell is always there
func (h *Host) CurrentWindow(ctx context.Context) (terminal.Window, error) {
	return h, nil
}

// CurrentTab returns the host itself
func (h *Host) CurrentTab(ctx context.Context) (terminal.Tab, error) {
	return h, nil
}

// CreateTab always fails with ErrNewTabUnsupported
func (h *Host) CreateTab(ctx context.Context) (terminal.Tab, error) {
	return nil, ErrNewTabUnsupported
}

// CurrentSession returns the host itself
func (h *Host) CurrentSession(ctx context.Context) (terminal.Session, error) {
	return h, nil
}

// SendLine writes text and a newline to Out
func (h *Host) SendLine(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(h.Out, text)
	return err
}
