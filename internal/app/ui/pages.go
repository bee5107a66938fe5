package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HomePage is the public landing page.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="max-w-3xl mx-auto text-center py-20">
<h1 class="text-4xl font-bold mb-4">Where students and startups meet</h1>
<p class="text-slate-400 mb-8">Discover early-stage jobs, follow startups you believe in, and apply in minutes.</p>
<div class="flex items-center justify-center gap-4">
<a href="/register" class="rounded-lg bg-indigo-500 px-6 py-3 text-sm font-semibold text-white hover:bg-indigo-400">Get started</a>
<a href="/login" class="rounded-lg border border-slate-700 px-6 py-3 text-sm font-semibold hover:bg-slate-800">Sign in</a>
</div></section>`)
		return err
	})
}

// NotFoundPage is the terminal page for unmatched paths.
func NotFoundPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="max-w-xl mx-auto text-center py-24">
<p class="text-6xl font-bold text-slate-700 mb-4">404</p>
<h1 class="text-2xl font-bold mb-2">Page not found</h1>
<p class="text-slate-400 mb-8">The page you are looking for does not exist or has moved.</p>
<a href="/" class="rounded-lg bg-indigo-500 px-6 py-3 text-sm font-semibold text-white hover:bg-indigo-400">Back home</a>
</section>`)
		return err
	})
}
