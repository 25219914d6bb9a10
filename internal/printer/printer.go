// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/swipelist/internal/core/styles"
)

type ctxKey struct{}

// Printer prefixes messages with a styled status icon.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.Printf("%s %s", styles.SuccessStyle.Render("✔"), fmt.Sprintf(format, args...))
}

func (p *Printer) Infof(format string, args ...any) {
	p.Printf("%s %s", styles.TextMutedStyle.Render(styles.IconInfo), fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.Printf("%s %s", styles.WarningStyle.Render(styles.IconWarning), fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.Printf("%s %s", styles.ErrorStyle.Render(styles.IconError), fmt.Sprintf(format, args...))
}
