package admin

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/wostup/wostup-go/internal/app/gateway"
	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/ui"
)

func statCard(label string, value int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="rounded-lg border border-slate-800 bg-slate-900 p-4">
<p class="text-xs uppercase tracking-wide text-slate-500">%s</p>
<p class="mt-1 text-2xl font-bold">%d</p>
</div>`, templ.EscapeString(label), value)
		return err
	})
}

func statsGrid(counts map[models.Role]int, activeSessions int, stats gateway.Result[map[string]int]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="grid gap-3 sm:grid-cols-2 lg:grid-cols-4">`); err != nil {
			return err
		}
		cards := []templ.Component{
			statCard("Students", counts[models.RoleStudent]),
			statCard("Startups", counts[models.RoleStartup]),
			statCard("Admins", counts[models.RoleAdmin]),
			statCard("Active sessions", activeSessions),
		}
		if stats.Success {
			cards = append(cards,
				statCard("Open jobs", stats.Data["jobs"]),
				statCard("Applications", stats.Data["applications"]),
				statCard("Updates", stats.Data["updates"]),
			)
		}
		for _, card := range cards {
			if err := card.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		if !stats.Success {
			return ui.Join(
				ui.Raw(`<div class="mt-3"></div>`),
				ui.ErrorState("Marketplace stats unavailable: "+stats.Err),
			).Render(ctx, w)
		}
		return nil
	})
}

func DashboardContent(counts map[models.Role]int, activeSessions int, stats gateway.Result[map[string]int]) templ.Component {
	return ui.Join(
		ui.PageHeading("Dashboard", "Platform health at a glance"),
		statsGrid(counts, activeSessions, stats),
	)
}

func AnalyticsContent(counts map[models.Role]int, activeSessions int, stats gateway.Result[map[string]int]) templ.Component {
	return ui.Join(
		ui.PageHeading("Analytics", "Signups and marketplace activity"),
		statsGrid(counts, activeSessions, stats),
	)
}

func StartupsContent(res gateway.Result[[]models.Startup]) templ.Component {
	return ui.Join(
		ui.PageHeading("Startups", "Companies on the platform"),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if !res.Success {
				return ui.ErrorState(res.Err).Render(ctx, w)
			}
			if len(res.Data) == 0 {
				return ui.EmptyState("No startups registered").Render(ctx, w)
			}
			if _, err := io.WriteString(w, `<table class="w-full text-left text-sm">
<thead><tr class="border-b border-slate-800 text-xs uppercase text-slate-500">
<th class="py-2">Name</th><th>Industry</th><th>Location</th><th class="text-right">Open roles</th>
</tr></thead><tbody>`); err != nil {
				return err
			}
			for _, s := range res.Data {
				if _, err := fmt.Fprintf(w, `<tr class="border-b border-slate-800/50">
<td class="py-2 font-medium">%s</td><td class="text-slate-400">%s</td><td class="text-slate-400">%s</td><td class="text-right">%d</td>
</tr>`,
					templ.EscapeString(s.Name),
					templ.EscapeString(s.Industry),
					templ.EscapeString(s.Location),
					s.OpenRoles,
				); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, `</tbody></table>`)
			return err
		}),
	)
}

func userRow(u models.UserAccount) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		verified := `<span class="text-xs text-amber-400">unverified</span>`
		if u.IsVerified {
			verified = `<span class="text-xs text-emerald-400">verified</span>`
		}
		activeLabel, nextActive := "deactivate", "false"
		if !u.IsActive {
			activeLabel, nextActive = "reactivate", "true"
		}

		if _, err := fmt.Fprintf(w, `<tr id="user-%s" class="border-b border-slate-800/50">
<td class="py-2 font-medium">%s</td>
<td class="text-slate-400">%s</td>
<td class="capitalize text-slate-400">%s</td>
<td>%s</td>
<td class="text-right">`,
			templ.EscapeString(u.ID),
			templ.EscapeString(u.Username),
			templ.EscapeString(u.Email),
			templ.EscapeString(string(u.Role)),
			verified,
		); err != nil {
			return err
		}
		if !u.IsVerified {
			if _, err := fmt.Fprintf(w, `<button hx-post="/admin/users/%s/verify" hx-target="#user-actions-response" class="mr-2 text-xs text-indigo-400 hover:text-indigo-300">verify</button>`,
				templ.EscapeString(u.ID)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<form class="inline" hx-post="/admin/users/%s/active" hx-target="#user-actions-response">
<input type="hidden" name="active" value="%s">
<button type="submit" class="text-xs text-slate-400 hover:text-white">%s</button>
</form></td></tr>`,
			templ.EscapeString(u.ID), nextActive, activeLabel,
		)
		return err
	})
}

func UsersContent(users []models.UserAccount) templ.Component {
	return ui.Join(
		ui.PageHeading("Users", "Every account on the platform"),
		ui.Raw(`<div id="user-actions-response" class="mb-4"></div>`),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if len(users) == 0 {
				return ui.EmptyState("No accounts yet").Render(ctx, w)
			}
			if _, err := io.WriteString(w, `<table class="w-full text-left text-sm">
<thead><tr class="border-b border-slate-800 text-xs uppercase text-slate-500">
<th class="py-2">Username</th><th>Email</th><th>Role</th><th>Status</th><th class="text-right">Actions</th>
</tr></thead><tbody>`); err != nil {
				return err
			}
			for _, u := range users {
				if err := userRow(u).Render(ctx, w); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, `</tbody></table>`)
			return err
		}),
	)
}

func ModerationContent(updates []models.StartupUpdate, flagged map[string][]Finding, cleanCount int) templ.Component {
	return ui.Join(
		ui.PageHeading("Moderation", "Startup updates containing banned terms"),
		ui.Raw(`<div id="moderation-response" class="mb-4"></div>`),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if len(flagged) == 0 {
				return ui.EmptyState(fmt.Sprintf("All %d recent updates are clean", cleanCount)).Render(ctx, w)
			}
			for _, update := range updates {
				findings, ok := flagged[update.ID]
				if !ok {
					continue
				}
				terms := make([]string, 0, len(findings))
				for _, finding := range findings {
					terms = append(terms, fmt.Sprintf(`<span class="rounded bg-red-500/10 px-2 py-0.5 text-xs text-red-300">%s</span>`, templ.EscapeString(finding.Term)))
				}
				if _, err := fmt.Fprintf(w, `<article class="mb-3 rounded-lg border border-red-500/30 bg-slate-900 p-4">
<div class="flex items-baseline justify-between"><h3 class="font-semibold">%s</h3><span class="text-xs text-slate-500">%s</span></div>
<p class="text-xs text-indigo-400">%s</p>
<p class="mt-2 text-sm text-slate-300">%s</p>
<div class="mt-3 flex flex-wrap items-center gap-1">`,
					templ.EscapeString(update.Title),
					templ.EscapeString(update.PostedAt.Format("Jan 2, 2006")),
					templ.EscapeString(update.Startup),
					templ.EscapeString(update.Body),
				); err != nil {
					return err
				}
				for _, term := range terms {
					if _, err := io.WriteString(w, term); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintf(w, `<button hx-delete="/admin/moderation/updates/%s" hx-target="#moderation-response" class="ml-auto text-xs text-red-400 hover:text-red-300">Remove update</button>
</div></article>`, templ.EscapeString(update.ID)); err != nil {
					return err
				}
			}
			return nil
		}),
	)
}
