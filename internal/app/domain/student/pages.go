package student

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/wostup/wostup-go/internal/app/gateway"
	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/ui"
)

func jobCard(job models.Job) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tags := make([]string, 0, len(job.Tags))
		for _, tag := range job.Tags {
			tags = append(tags, fmt.Sprintf(`<span class="rounded bg-slate-800 px-2 py-0.5 text-xs text-slate-400">%s</span>`, templ.EscapeString(tag)))
		}
		_, err := fmt.Fprintf(w, `<a href="/student/jobs/%s" class="block rounded-lg border border-slate-800 bg-slate-900 p-4 hover:border-indigo-500/50">
<div class="flex items-baseline justify-between"><h3 class="font-semibold">%s</h3><span class="text-xs text-slate-500">%s</span></div>
<p class="mt-1 text-sm text-slate-400">%s &middot; %s &middot; %s</p>
<div class="mt-2 flex flex-wrap gap-1">%s</div>
</a>`,
			templ.EscapeString(job.ID),
			templ.EscapeString(job.Title),
			templ.EscapeString(job.Type),
			templ.EscapeString(job.StartupName),
			templ.EscapeString(job.Location),
			templ.EscapeString(job.Salary),
			strings.Join(tags, ""),
		)
		return err
	})
}

func jobList(res gateway.Result[[]models.Job], emptyMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !res.Success {
			return ui.ErrorState(res.Err).Render(ctx, w)
		}
		if len(res.Data) == 0 {
			return ui.EmptyState(emptyMessage).Render(ctx, w)
		}
		if _, err := io.WriteString(w, `<div class="space-y-3">`); err != nil {
			return err
		}
		for _, job := range res.Data {
			if err := jobCard(job).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func applicationRow(app models.Application) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="flex items-center justify-between rounded-lg border border-slate-800 bg-slate-900 px-4 py-3">
<div><a class="font-medium hover:text-indigo-400" href="/student/jobs/%s">%s</a>
<p class="text-xs text-slate-500">Applied %s</p></div>
<span class="rounded-full bg-slate-800 px-3 py-1 text-xs capitalize text-slate-300">%s</span>
</div>`,
			templ.EscapeString(app.JobID),
			templ.EscapeString(app.JobTitle),
			templ.EscapeString(app.AppliedAt.Format("Jan 2, 2006")),
			templ.EscapeString(app.Status),
		)
		return err
	})
}

func applicationList(res gateway.Result[[]models.Application]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !res.Success {
			return ui.ErrorState(res.Err).Render(ctx, w)
		}
		if len(res.Data) == 0 {
			return ui.EmptyState("You have not applied to anything yet").Render(ctx, w)
		}
		if _, err := io.WriteString(w, `<div class="space-y-2">`); err != nil {
			return err
		}
		for _, app := range res.Data {
			if err := applicationRow(app).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// DashboardContent pairs recommended jobs with recent applications.
func DashboardContent(user *models.User, jobs gateway.Result[[]models.Job], apps gateway.Result[[]models.Application]) templ.Component {
	return ui.Join(
		ui.PageHeading("Welcome back, "+user.Username, "Your personalized job matches and application status"),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, `<div class="grid gap-6 lg:grid-cols-2"><section><h2 class="mb-3 text-lg font-semibold">Recommended for you</h2>`); err != nil {
				return err
			}
			if err := jobList(jobs, "No recommendations yet, complete your profile to get matched").Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</section><section><h2 class="mb-3 text-lg font-semibold">Your applications</h2>`); err != nil {
				return err
			}
			if err := applicationList(apps).Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, `</section></div>`)
			return err
		}),
	)
}

func JobsContent(res gateway.Result[[]models.Job]) templ.Component {
	return ui.Join(
		ui.PageHeading("Jobs", "Roles matched to your profile"),
		jobList(res, "No open roles right now, check back soon"),
	)
}

func JobDetailContent(res gateway.Result[models.Job]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !res.Success {
			return ui.ErrorState(res.Err).Render(ctx, w)
		}
		job := res.Data
		_, err := fmt.Fprintf(w, `<article class="mx-auto max-w-2xl">
<h1 class="text-2xl font-bold">%s</h1>
<p class="mt-1 text-sm text-slate-400">%s &middot; %s &middot; %s &middot; %s</p>
<div class="prose prose-invert mt-6 text-sm text-slate-300">%s</div>
<div id="apply-response" class="mt-6"></div>
<button hx-post="/student/jobs/%s/apply" hx-target="#apply-response" class="mt-2 rounded-lg bg-indigo-500 px-6 py-2 text-sm font-semibold text-white hover:bg-indigo-400">Apply</button>
</article>`,
			templ.EscapeString(job.Title),
			templ.EscapeString(job.StartupName),
			templ.EscapeString(job.Location),
			templ.EscapeString(job.Type),
			templ.EscapeString(job.Salary),
			templ.EscapeString(job.Description),
			templ.EscapeString(job.ID),
		)
		return err
	})
}

func ApplicationsContent(res gateway.Result[[]models.Application]) templ.Component {
	return ui.Join(
		ui.PageHeading("Applications", "Everything you have applied to"),
		applicationList(res),
	)
}

func startupCard(s models.Startup) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<a href="/student/startups/%s" class="block rounded-lg border border-slate-800 bg-slate-900 p-4 hover:border-indigo-500/50">
<div class="flex items-baseline justify-between"><h3 class="font-semibold">%s</h3><span class="text-xs text-slate-500">%d open roles</span></div>
<p class="mt-1 text-sm text-slate-400">%s</p>
<p class="mt-1 text-xs text-slate-500">%s &middot; %s &middot; %d people</p>
</a>`,
			templ.EscapeString(s.ID),
			templ.EscapeString(s.Name),
			s.OpenRoles,
			templ.EscapeString(s.Tagline),
			templ.EscapeString(s.Industry),
			templ.EscapeString(s.Location),
			s.TeamSize,
		)
		return err
	})
}

func StartupsContent(res gateway.Result[[]models.Startup]) templ.Component {
	return ui.Join(
		ui.PageHeading("Startups", "Companies hiring on Wostup"),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if !res.Success {
				return ui.ErrorState(res.Err).Render(ctx, w)
			}
			if len(res.Data) == 0 {
				return ui.EmptyState("No startups listed yet").Render(ctx, w)
			}
			if _, err := io.WriteString(w, `<div class="grid gap-3 md:grid-cols-2">`); err != nil {
				return err
			}
			for _, s := range res.Data {
				if err := startupCard(s).Render(ctx, w); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, `</div>`)
			return err
		}),
	)
}

func StartupDetailContent(startup gateway.Result[models.Startup], jobs gateway.Result[[]models.Job]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !startup.Success {
			return ui.ErrorState(startup.Err).Render(ctx, w)
		}
		s := startup.Data
		if _, err := fmt.Fprintf(w, `<article class="mx-auto max-w-2xl">
<h1 class="text-2xl font-bold">%s</h1>
<p class="mt-1 text-sm text-slate-400">%s</p>
<p class="mt-1 text-xs text-slate-500">%s &middot; %s &middot; %d people</p>
<div class="mt-6 text-sm text-slate-300">%s</div>
<h2 class="mb-3 mt-8 text-lg font-semibold">Open roles</h2>`,
			templ.EscapeString(s.Name),
			templ.EscapeString(s.Tagline),
			templ.EscapeString(s.Industry),
			templ.EscapeString(s.Location),
			s.TeamSize,
			templ.EscapeString(s.Description),
		); err != nil {
			return err
		}
		if err := jobList(jobs, "No open roles at the moment").Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</article>`)
		return err
	})
}

func FeedContent(res gateway.Result[[]models.StartupUpdate]) templ.Component {
	return ui.Join(
		ui.PageHeading("Feed", "Latest updates from startups"),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if !res.Success {
				return ui.ErrorState(res.Err).Render(ctx, w)
			}
			if len(res.Data) == 0 {
				return ui.EmptyState("Nothing in your feed yet").Render(ctx, w)
			}
			for _, update := range res.Data {
				if _, err := fmt.Fprintf(w, `<article class="mb-3 rounded-lg border border-slate-800 bg-slate-900 p-4">
<div class="flex items-baseline justify-between"><h3 class="font-semibold">%s</h3><span class="text-xs text-slate-500">%s</span></div>
<p class="text-xs text-indigo-400">%s</p>
<p class="mt-2 text-sm text-slate-300">%s</p>
</article>`,
					templ.EscapeString(update.Title),
					templ.EscapeString(update.PostedAt.Format("Jan 2")),
					templ.EscapeString(update.Startup),
					templ.EscapeString(update.Body),
				); err != nil {
					return err
				}
			}
			return nil
		}),
	)
}

// ProfileContent renders the student variant of the profile union. The
// switch on Kind is exhaustive; an unexpected variant renders as an
// error instead of a half-filled page.
func ProfileContent(profile models.Profile) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch profile.Kind {
		case models.ProfileKindStudent:
			p := profile.Student
			skills := make([]string, 0, len(p.Skills))
			for _, skill := range p.Skills {
				skills = append(skills, fmt.Sprintf(`<span class="rounded bg-slate-800 px-2 py-0.5 text-xs text-slate-300">%s</span>`, templ.EscapeString(skill)))
			}
			_, err := fmt.Fprintf(w, `<article class="mx-auto max-w-2xl">
<h1 class="text-2xl font-bold">%s</h1>
<p class="mt-1 text-sm text-slate-400">%s &middot; %s &middot; Class of %d</p>
<div class="mt-4 flex flex-wrap gap-1">%s</div>
<p class="mt-6 text-sm text-slate-300">%s</p>
</article>`,
				templ.EscapeString(p.FullName),
				templ.EscapeString(p.University),
				templ.EscapeString(p.Degree),
				p.GradYear,
				strings.Join(skills, ""),
				templ.EscapeString(p.Bio),
			)
			return err
		case models.ProfileKindStartup:
			return ui.ErrorState("This account has a startup profile").Render(ctx, w)
		default:
			return ui.ErrorState("Unknown profile type").Render(ctx, w)
		}
	})
}

const fieldClass = `w-full rounded-lg border border-slate-700 bg-slate-900 px-3 py-2 text-sm focus:border-indigo-500 focus:outline-none`

func CreateProfileFormContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="mx-auto max-w-xl">
<h1 class="mb-6 text-2xl font-bold">Set up your profile</h1>
<div id="profile-response" class="mb-4"></div>
<form hx-post="/student/create-profile" hx-target="#profile-response" class="space-y-4">
<div><label class="mb-1 block text-sm text-slate-400" for="full_name">Full name</label>
<input class="`+fieldClass+`" type="text" id="full_name" name="full_name" required></div>
<div class="grid gap-4 sm:grid-cols-2">
<div><label class="mb-1 block text-sm text-slate-400" for="university">University</label>
<input class="`+fieldClass+`" type="text" id="university" name="university"></div>
<div><label class="mb-1 block text-sm text-slate-400" for="degree">Degree</label>
<input class="`+fieldClass+`" type="text" id="degree" name="degree"></div>
</div>
<div><label class="mb-1 block text-sm text-slate-400" for="grad_year">Graduation year</label>
<input class="`+fieldClass+`" type="number" id="grad_year" name="grad_year" min="2000" max="2100"></div>
<div><label class="mb-1 block text-sm text-slate-400" for="skills">Skills (comma separated)</label>
<input class="`+fieldClass+`" type="text" id="skills" name="skills" placeholder="Go, SQL, React"></div>
<div><label class="mb-1 block text-sm text-slate-400" for="bio">Bio</label>
<textarea class="`+fieldClass+`" id="bio" name="bio" rows="4"></textarea></div>
<button class="rounded-lg bg-indigo-500 px-6 py-2 text-sm font-semibold text-white hover:bg-indigo-400" type="submit">Save profile</button>
</form>
</div>`)
		return err
	})
}
