package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type AlertKind string

const (
	AlertError   AlertKind = "error"
	AlertSuccess AlertKind = "success"
	AlertInfo    AlertKind = "info"
)

var alertClasses = map[AlertKind]string{
	AlertError:   "border-red-500/40 bg-red-500/10 text-red-300",
	AlertSuccess: "border-emerald-500/40 bg-emerald-500/10 text-emerald-300",
	AlertInfo:    "border-sky-500/40 bg-sky-500/10 text-sky-300",
}

// Alert renders an inline dismissable message. Also returned on its own
// for HTMX form error responses.
func Alert(kind AlertKind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="rounded-lg border px-4 py-3 text-sm %s" role="alert">%s</div>`,
			alertClasses[kind],
			templ.EscapeString(message),
		)
		return err
	})
}

// PageHeading is the common h1 + subtitle block at the top of a page.
func PageHeading(title, subtitle string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="mb-6"><h1 class="text-2xl font-bold">%s</h1><p class="text-sm text-slate-400">%s</p></div>`,
			templ.EscapeString(title),
			templ.EscapeString(subtitle),
		)
		return err
	})
}

// ErrorState shows a backend failure inline. Pages keep whatever they
// already rendered; this block replaces only the missing section.
func ErrorState(message string) templ.Component {
	return Alert(AlertError, message)
}

// EmptyState fills a section that loaded fine but has nothing to show.
func EmptyState(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="rounded-lg border border-dashed border-slate-700 px-6 py-10 text-center text-sm text-slate-500">%s</div>`,
			templ.EscapeString(message),
		)
		return err
	})
}

// Join renders several components in sequence as one.
func Join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, component := range components {
			if component == nil {
				continue
			}
			if err := component.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Raw emits a pre-built trusted HTML fragment.
func Raw(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}
