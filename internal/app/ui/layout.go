// Package ui holds the shared view components. Components are written
// as code-only templ components so pages and layouts compose through
// the same templ.Component interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wostup/wostup-go/internal/app/models"
)

var titleCaser = cases.Title(language.English)

const (
	navItemClass       = "flex items-center gap-3 px-4 py-3 rounded-lg text-sm font-medium transition-all text-slate-400 hover:text-white hover:bg-slate-800"
	navItemActiveClass = "bg-slate-800 text-white shadow-sm"
)

// navItemClasses merges the base nav classes with the active variant.
func navItemClasses(active bool) string {
	if !active {
		return navItemClass
	}
	return twmerge.Merge(navItemClass, navItemActiveClass)
}

// Initials derives the two-letter avatar badge from a username.
func Initials(username string) string {
	runes := []rune(strings.TrimSpace(username))
	if len(runes) == 0 {
		return "??"
	}
	if len(runes) == 1 {
		return strings.ToUpper(string(runes[0]))
	}
	return strings.ToUpper(string(runes[:2]))
}

// StudentPage wraps content in the student layout shell.
func StudentPage(title string, user *models.User, activePath string, content templ.Component) templ.Component {
	return LayoutPage(models.LayoutTempl{
		Title:      title + " - Wostup",
		User:       user,
		Nav:        models.StudentNav,
		ActivePath: activePath,
		Content:    content,
	})
}

// StartupPage wraps content in the startup layout shell.
func StartupPage(title string, user *models.User, activePath string, content templ.Component) templ.Component {
	return LayoutPage(models.LayoutTempl{
		Title:      title + " - Wostup",
		User:       user,
		Nav:        models.StartupNav,
		ActivePath: activePath,
		Content:    content,
	})
}

// AdminPage wraps content in the admin layout shell.
func AdminPage(title string, user *models.User, activePath string, content templ.Component) templ.Component {
	return LayoutPage(models.LayoutTempl{
		Title:      title + " - Wostup",
		User:       user,
		Nav:        models.AdminNav,
		ActivePath: activePath,
		Content:    content,
	})
}

// PublicPage wraps content in the unauthenticated top-nav frame.
func PublicPage(title string, user *models.User, content templ.Component) templ.Component {
	return LayoutPage(models.LayoutTempl{
		Title:   title + " - Wostup",
		User:    user,
		Nav:     models.PublicNav,
		Content: content,
	})
}

// LayoutPage renders the full document: sticky sidebar on wide
// viewports, a checkbox-toggled overlay panel on narrow ones, header
// with the account menu, then the page content.
func LayoutPage(p models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en" class="h-full">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/@tailwindcss/browser@4"></script>
<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>
</head>
<body class="h-full bg-slate-950 text-slate-100">
<div class="min-h-screen flex w-full">`, templ.EscapeString(p.Title)); err != nil {
			return err
		}

		// Desktop sidebar.
		if _, err := io.WriteString(w, `<aside class="hidden lg:flex lg:w-64 flex-col bg-slate-900 border-r border-slate-800 sticky top-0 h-screen shrink-0">`); err != nil {
			return err
		}
		if err := sidebar(p).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</aside>`); err != nil {
			return err
		}

		// Mobile overlay panel, toggled without JavaScript.
		if _, err := io.WriteString(w, `<input type="checkbox" id="nav-toggle" class="peer sr-only">
<div class="fixed inset-0 z-50 hidden peer-checked:flex lg:hidden">
<label for="nav-toggle" class="absolute inset-0 bg-black/60" aria-label="Close navigation"></label>
<aside class="relative w-[280px] flex flex-col bg-slate-900 h-full">`); err != nil {
			return err
		}
		if err := sidebar(p).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</aside></div>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<div class="flex-1 flex flex-col min-w-0">`); err != nil {
			return err
		}
		if err := header(p).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="flex-1 overflow-y-auto p-6">`); err != nil {
			return err
		}
		if p.Content != nil {
			if err := p.Content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></div></div></body></html>`)
		return err
	})
}

func sidebar(p models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="p-6 flex items-center gap-3"><span class="text-xl font-bold tracking-tight">Wostup</span></div><nav class="flex-1 px-4 space-y-1 overflow-y-auto">`); err != nil {
			return err
		}
		for _, item := range p.Nav.Items {
			active := item.Path == p.ActivePath
			if _, err := fmt.Fprintf(w,
				`<a href="%s" class="%s" data-icon="%s">%s</a>`,
				templ.EscapeString(item.Path),
				navItemClasses(active),
				templ.EscapeString(item.Icon),
				templ.EscapeString(item.Label),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</nav><div class="p-4 border-t border-slate-800">`); err != nil {
			return err
		}
		if p.User != nil {
			if _, err := io.WriteString(w, `<form method="post" action="/auth/logout"><button type="submit" class="w-full text-left px-4 py-3 rounded-lg text-sm text-slate-400 hover:text-white hover:bg-slate-800">Sign out</button></form>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func header(p models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="h-16 border-b border-slate-800 bg-slate-900/50 flex items-center justify-between px-4 lg:px-6 sticky top-0 z-40">
<label for="nav-toggle" class="lg:hidden cursor-pointer p-2 rounded hover:bg-slate-800" aria-label="Open navigation">&#9776;</label>
<div class="flex items-center gap-3 ml-auto">`); err != nil {
			return err
		}
		if p.User != nil {
			role := titleCaser.String(string(p.User.Role))
			if _, err := fmt.Fprintf(w,
				`<span class="hidden sm:block text-xs text-slate-500">%s</span><span class="text-sm font-semibold">%s</span><span class="h-8 w-8 rounded-full bg-indigo-500 text-white text-xs font-bold flex items-center justify-center" data-testid="avatar">%s</span>`,
				templ.EscapeString(role),
				templ.EscapeString(p.User.Username),
				templ.EscapeString(Initials(p.User.Username)),
			); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<a href="/login" class="text-sm font-medium text-slate-300 hover:text-white">Sign in</a>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></header>`)
		return err
	})
}
