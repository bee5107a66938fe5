package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wostup/wostup-go/internal/app/models"
)

func TestInitials(t *testing.T) {
	assert.Equal(t, "AD", Initials("ada"))
	assert.Equal(t, "JD", Initials("jdoe"))
	assert.Equal(t, "X", Initials("x"))
	assert.Equal(t, "??", Initials(""))
	assert.Equal(t, "??", Initials("   "))
}

func TestStudentLayoutShell(t *testing.T) {
	user := &models.User{ID: "u1", Username: "ada", Role: models.RoleStudent, IsVerified: true}

	var sb strings.Builder
	err := StudentPage("Dashboard", user, "/student/dashboard", EmptyState("nothing yet")).
		Render(context.Background(), &sb)
	require.NoError(t, err)
	html := sb.String()

	assert.Contains(t, html, "<title>Dashboard - Wostup</title>")
	for _, item := range models.StudentNav.Items {
		assert.Contains(t, html, `href="`+item.Path+`"`)
	}
	// Account menu: username, role label, derived initials.
	assert.Contains(t, html, ">ada<")
	assert.Contains(t, html, ">Student<")
	assert.Contains(t, html, ">AD<")
	// Sign-out is a real action, not a bare link.
	assert.Contains(t, html, `action="/auth/logout"`)
	assert.Contains(t, html, "nothing yet")
}

func TestLayoutLoadsClientRuntimes(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, PublicPage("Welcome", nil, HomePage()).
		Render(context.Background(), &sb))
	html := sb.String()

	// The hx-* attributes across the app need the runtime in <head>.
	assert.Contains(t, html, `<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`)
	assert.Contains(t, html, `<script src="https://unpkg.com/@tailwindcss/browser@4"></script>`)
}

func TestActiveNavIsExactMatch(t *testing.T) {
	user := &models.User{ID: "u1", Username: "ada", Role: models.RoleStudent, IsVerified: true}

	t.Run("exact path highlighted", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, StudentPage("Jobs", user, "/student/jobs", nil).
			Render(context.Background(), &sb))
		assert.Contains(t, sb.String(), navItemClasses(true))
	})

	t.Run("subpath not highlighted", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, StudentPage("Job", user, "/student/jobs/j123", nil).
			Render(context.Background(), &sb))
		assert.NotContains(t, sb.String(), navItemClasses(true))
	})
}

func TestRoleShells(t *testing.T) {
	startupUser := &models.User{ID: "u2", Username: "acme", Role: models.RoleStartup, IsVerified: true}
	adminUser := &models.User{ID: "u3", Username: "root", Role: models.RoleAdmin, IsVerified: true}

	var sb strings.Builder
	require.NoError(t, StartupPage("Dashboard", startupUser, "/startup/dashboard", nil).
		Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), `href="/startup/applicants"`)
	assert.NotContains(t, sb.String(), `href="/student/dashboard"`)

	sb.Reset()
	require.NoError(t, AdminPage("Dashboard", adminUser, "/admin/dashboard", nil).
		Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), `href="/admin/moderation"`)
}

func TestAnonymousLayout(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, PublicPage("Welcome", nil, HomePage()).
		Render(context.Background(), &sb))
	html := sb.String()

	assert.NotContains(t, html, `action="/auth/logout"`)
	assert.Contains(t, html, `href="/login"`)
}
