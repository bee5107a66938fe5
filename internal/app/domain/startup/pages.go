package startup

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

const fieldClass = `w-full rounded-lg border border-slate-700 bg-slate-900 px-3 py-2 text-sm focus:border-indigo-500 focus:outline-none`

func jobRow(job models.Job) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<a href="/startup/jobs/%s" class="flex items-center justify-between rounded-lg border border-slate-800 bg-slate-900 px-4 py-3 hover:border-indigo-500/50">
<div><span class="font-medium">%s</span>
<p class="text-xs text-slate-500">%s &middot; %s</p></div>
<span class="text-xs text-slate-500">%s</span>
</a>`,
			templ.EscapeString(job.ID),
			templ.EscapeString(job.Title),
			templ.EscapeString(job.Location),
			templ.EscapeString(job.Type),
			templ.EscapeString(job.Salary),
		)
		return err
	})
}

func jobList(res gateway.Result[[]models.Job]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !res.Success {
			return ui.ErrorState(res.Err).Render(ctx, w)
		}
		if len(res.Data) == 0 {
			return ui.EmptyState("You have no open roles yet").Render(ctx, w)
		}
		if _, err := io.WriteString(w, `<div class="space-y-2">`); err != nil {
			return err
		}
		for _, job := range res.Data {
			if err := jobRow(job).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

var statusOptions = []string{"submitted", "reviewing", "interview", "offer", "rejected"}

func applicantRow(a models.Applicant) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		options := make([]string, 0, len(statusOptions))
		for _, status := range statusOptions {
			selected := ""
			if status == a.Status {
				selected = " selected"
			}
			options = append(options, fmt.Sprintf(`<option value="%s"%s>%s</option>`, status, selected, status))
		}
		_, err := fmt.Fprintf(w, `<div id="applicant-%s" class="flex items-center justify-between rounded-lg border border-slate-800 bg-slate-900 px-4 py-3">
<div><span class="font-medium">%s</span>
<p class="text-xs text-slate-500">%s &middot; applied %s</p></div>
<form hx-put="/startup/applicants/%s/status" hx-target="#applicant-%s" hx-swap="outerHTML">
<select name="status" onchange="this.form.requestSubmit()" class="rounded border border-slate-700 bg-slate-900 px-2 py-1 text-xs capitalize">%s</select>
</form>
</div>`,
			templ.EscapeString(a.ID),
			templ.EscapeString(a.Name),
			templ.EscapeString(a.Email),
			templ.EscapeString(a.AppliedAt.Format("Jan 2, 2006")),
			templ.EscapeString(a.ID),
			templ.EscapeString(a.ID),
			strings.Join(options, ""),
		)
		return err
	})
}

func applicantList(res gateway.Result[[]models.Applicant]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !res.Success {
			return ui.ErrorState(res.Err).Render(ctx, w)
		}
		if len(res.Data) == 0 {
			return ui.EmptyState("No applicants yet").Render(ctx, w)
		}
		if _, err := io.WriteString(w, `<div class="space-y-2">`); err != nil {
			return err
		}
		for _, a := range res.Data {
			if err := applicantRow(a).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func DashboardContent(user *models.User, jobs gateway.Result[[]models.Job], applicants gateway.Result[[]models.Applicant]) templ.Component {
	return ui.Join(
		ui.PageHeading(user.Username, "Your open roles and the people applying to them"),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, `<div class="grid gap-6 lg:grid-cols-2"><section><h2 class="mb-3 text-lg font-semibold">Open roles</h2>`); err != nil {
				return err
			}
			if err := jobList(jobs).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</section><section><h2 class="mb-3 text-lg font-semibold">Latest applicants</h2>`); err != nil {
				return err
			}
			if err := applicantList(applicants).Render(ctx, w); err != nil {
				return err
			}
			_, err := io.WriteString(w, `</section></div>`)
			return err
		}),
	)
}

func JobsContent(res gateway.Result[[]models.Job]) templ.Component {
	return ui.Join(
		ui.PageHeading("Jobs", "Roles you are hiring for"),
		jobList(res),
		postJobForm(),
	)
}

func postJobForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="mt-8 max-w-xl">
<h2 class="mb-3 text-lg font-semibold">Post a new role</h2>
<div id="job-response" class="mb-4"></div>
<form hx-post="/startup/jobs" hx-target="#job-response" class="space-y-4">
<div><label class="mb-1 block text-sm text-slate-400" for="title">Title</label>
<input class="`+fieldClass+`" type="text" id="title" name="title" required></div>
<div class="grid gap-4 sm:grid-cols-3">
<div><label class="mb-1 block text-sm text-slate-400" for="location">Location</label>
<input class="`+fieldClass+`" type="text" id="location" name="location"></div>
<div><label class="mb-1 block text-sm text-slate-400" for="type">Type</label>
<input class="`+fieldClass+`" type="text" id="type" name="type" placeholder="Internship"></div>
<div><label class="mb-1 block text-sm text-slate-400" for="salary">Salary</label>
<input class="`+fieldClass+`" type="text" id="salary" name="salary"></div>
</div>
<div><label class="mb-1 block text-sm text-slate-400" for="tags">Tags (comma separated)</label>
<input class="`+fieldClass+`" type="text" id="tags" name="tags"></div>
<div><label class="mb-1 block text-sm text-slate-400" for="description">Description</label>
<textarea class="`+fieldClass+`" id="description" name="description" rows="5"></textarea></div>
<button class="rounded-lg bg-indigo-500 px-6 py-2 text-sm font-semibold text-white hover:bg-indigo-400" type="submit">Publish role</button>
</form>
</section>`)
		return err
	})
}

func JobDetailContent(job gateway.Result[models.Job], applicants gateway.Result[[]models.Applicant]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !job.Success {
			return ui.ErrorState(job.Err).Render(ctx, w)
		}
		j := job.Data
		if _, err := fmt.Fprintf(w, `<article class="mx-auto max-w-2xl">
<h1 class="text-2xl font-bold">%s</h1>
<p class="mt-1 text-sm text-slate-400">%s &middot; %s &middot; %s</p>
<div class="mt-6 text-sm text-slate-300">%s</div>
<h2 class="mb-3 mt-8 text-lg font-semibold">Applicants</h2>`,
			templ.EscapeString(j.Title),
			templ.EscapeString(j.Location),
			templ.EscapeString(j.Type),
			templ.EscapeString(j.Salary),
			templ.EscapeString(j.Description),
		); err != nil {
			return err
		}
		if err := applicantList(applicants).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</article>`)
		return err
	})
}

func ApplicantsContent(res gateway.Result[[]models.Applicant]) templ.Component {
	return ui.Join(
		ui.PageHeading("Applicants", "Everyone applying to your roles"),
		applicantList(res),
	)
}

func UpdatesContent(res gateway.Result[[]models.StartupUpdate]) templ.Component {
	return ui.Join(
		ui.PageHeading("Updates", "What you have shared with followers"),
		templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if !res.Success {
				return ui.ErrorState(res.Err).Render(ctx, w)
			}
			if len(res.Data) == 0 {
				if err := ui.EmptyState("You have not posted any updates yet").Render(ctx, w); err != nil {
					return err
				}
			}
			for _, update := range res.Data {
				if _, err := fmt.Fprintf(w, `<article class="mb-3 rounded-lg border border-slate-800 bg-slate-900 p-4">
<div class="flex items-baseline justify-between"><h3 class="font-semibold">%s</h3><span class="text-xs text-slate-500">%s</span></div>
<p class="mt-2 text-sm text-slate-300">%s</p>
</article>`,
					templ.EscapeString(update.Title),
					templ.EscapeString(update.PostedAt.Format("Jan 2, 2006")),
					templ.EscapeString(update.Body),
				); err != nil {
					return err
				}
			}
			return nil
		}),
		postUpdateForm(),
	)
}

func postUpdateForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="mt-8 max-w-xl">
<h2 class="mb-3 text-lg font-semibold">Share an update</h2>
<div id="update-response" class="mb-4"></div>
<form hx-post="/startup/updates" hx-target="#update-response" class="space-y-4">
<div><label class="mb-1 block text-sm text-slate-400" for="title">Title</label>
<input class="`+fieldClass+`" type="text" id="title" name="title" required></div>
<div><label class="mb-1 block text-sm text-slate-400" for="body">Update</label>
<textarea class="`+fieldClass+`" id="body" name="body" rows="4" required></textarea></div>
<button class="rounded-lg bg-indigo-500 px-6 py-2 text-sm font-semibold text-white hover:bg-indigo-400" type="submit">Post update</button>
</form>
</section>`)
		return err
	})
}

// ProfileContent renders the startup variant of the profile union.
func ProfileContent(profile models.Profile) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch profile.Kind {
		case models.ProfileKindStartup:
			p := profile.Startup
			_, err := fmt.Fprintf(w, `<article class="mx-auto max-w-2xl">
<h1 class="text-2xl font-bold">%s</h1>
<p class="mt-1 text-sm text-slate-400">%s &middot; %d people</p>
<a class="text-sm text-indigo-400 hover:text-indigo-300" href="%s">%s</a>
<p class="mt-6 text-sm text-slate-300">%s</p>
</article>`,
				templ.EscapeString(p.CompanyName),
				templ.EscapeString(p.Industry),
				p.TeamSize,
				templ.EscapeString(p.Website),
				templ.EscapeString(p.Website),
				templ.EscapeString(p.Pitch),
			)
			return err
		case models.ProfileKindStudent:
			return ui.ErrorState("This account has a student profile").Render(ctx, w)
		default:
			return ui.ErrorState("Unknown profile type").Render(ctx, w)
		}
	})
}

func CreateProfileFormContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="mx-auto max-w-xl">
<h1 class="mb-6 text-2xl font-bold">Set up your company profile</h1>
<div id="profile-response" class="mb-4"></div>
<form hx-post="/startup/create-profile" hx-target="#profile-response" class="space-y-4">
<div><label class="mb-1 block text-sm text-slate-400" for="company_name">Company name</label>
<input class="`+fieldClass+`" type="text" id="company_name" name="company_name" required></div>
<div class="grid gap-4 sm:grid-cols-2">
<div><label class="mb-1 block text-sm text-slate-400" for="website">Website</label>
<input class="`+fieldClass+`" type="url" id="website" name="website"></div>
<div><label class="mb-1 block text-sm text-slate-400" for="industry">Industry</label>
<input class="`+fieldClass+`" type="text" id="industry" name="industry"></div>
</div>
<div><label class="mb-1 block text-sm text-slate-400" for="team_size">Team size</label>
<input class="`+fieldClass+`" type="number" id="team_size" name="team_size" min="1"></div>
<div><label class="mb-1 block text-sm text-slate-400" for="pitch">Pitch</label>
<textarea class="`+fieldClass+`" id="pitch" name="pitch" rows="4"></textarea></div>
<button class="rounded-lg bg-indigo-500 px-6 py-2 text-sm font-semibold text-white hover:bg-indigo-400" type="submit">Save profile</button>
</form>
</div>`)
		return err
	})
}
