// Package cli holds what every vaultkeeper subcommand shares: the opened
// vault and the output helpers.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"vaultkeeper/internal/app/core"
)

var ErrNoVault = errors.New("vault is not open")

type Env struct {
	Vault *core.Core
	JSON  bool
	Out   io.Writer
}

type envKey struct{}

func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

func FromContext(ctx context.Context) (*Env, error) {
	env, ok := ctx.Value(envKey{}).(*Env)
	if !ok || env == nil || env.Vault == nil {
		return nil, ErrNoVault
	}
	return env, nil
}

var (
	labelColor = color.New(color.FgCyan, color.Bold)
	dimColor   = color.New(color.Faint)
	okColor    = color.New(color.FgGreen)
)

// Print writes v as indented JSON when --json is set, otherwise calls human.
func (e *Env) Print(v any, human func(w io.Writer) error) error {
	if e.JSON {
		enc := json.NewEncoder(e.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return human(e.Out)
}

func (e *Env) Done(format string, args ...any) {
	if e.JSON {
		return
	}
	okColor.Fprintf(e.Out, "✓ "+format+"\n", args...)
}

func Label(w io.Writer, label, value string) {
	labelColor.Fprintf(w, "%s: ", label)
	fmt.Fprintln(w, value)
}

func Heading(w io.Writer, text string) {
	labelColor.Fprintln(w, text)
}

func Dim(w io.Writer, format string, args ...any) {
	dimColor.Fprintf(w, format+"\n", args...)
}

func NewTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, h := range header {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)
	return tw
}

func Truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
