// Package student serves the student area: recommended jobs, startup
// discovery, applications and the student profile. All marketplace
// data comes through the backend gateway; failures render inline
// without breaking the page frame.
package student

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wostup/wostup-go/internal/app/gateway"
	"github.com/wostup/wostup-go/internal/app/middleware"
	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/ui"
)

type Handlers struct {
	gw     *gateway.Client
	logger *zap.Logger
}

func NewHandlers(gw *gateway.Client, logger *zap.Logger) *Handlers {
	return &Handlers{gw: gw, logger: logger}
}

func (h *Handlers) render(c *gin.Context, title string, content templ.Component) {
	user := middleware.GetUserFromContext(c)
	c.Status(http.StatusOK)
	if err := ui.StudentPage(title, user, c.Request.URL.Path, content).
		Render(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("Failed to render page", zap.Error(err))
	}
}

// Dashboard shows recommendations and recent applications side by
// side. The two backend calls run concurrently; each panel degrades on
// its own when its call fails.
func (h *Handlers) Dashboard(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	ctx := c.Request.Context()

	var jobsRes gateway.Result[[]models.Job]
	var appsRes gateway.Result[[]models.Application]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobsRes = gateway.Fetch[[]models.Job](gctx, h.gw, "/recommendations/jobs/"+url.PathEscape(user.ID))
		return nil
	})
	g.Go(func() error {
		appsRes = gateway.Fetch[[]models.Application](gctx, h.gw, "/applications/student/"+url.PathEscape(user.ID))
		return nil
	})
	_ = g.Wait()

	h.render(c, "Dashboard", DashboardContent(user, jobsRes, appsRes))
}

// Jobs lists personalized recommendations, falling back to the
// cold-start pool for accounts the recommender does not know yet.
func (h *Handlers) Jobs(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	ctx := c.Request.Context()

	res := gateway.Fetch[[]models.Job](ctx, h.gw, "/recommendations/jobs/"+url.PathEscape(user.ID))
	if !res.Success || len(res.Data) == 0 {
		res = gateway.Fetch[[]models.Job](ctx, h.gw, "/recommendations/cold-start/jobs?limit=20&random=true")
	}

	h.render(c, "Jobs", JobsContent(res))
}

func (h *Handlers) JobDetail(c *gin.Context) {
	id := c.Param("id")
	res := gateway.Fetch[models.Job](c.Request.Context(), h.gw, "/get-job/"+url.PathEscape(id))
	h.render(c, "Job", JobDetailContent(res))
}

// Apply submits an application for a job. HTMX swaps the response into
// the apply section of the job page.
func (h *Handlers) Apply(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	jobID := c.Param("id")

	res := gateway.Fetch[models.Application](c.Request.Context(), h.gw, "/applications",
		gateway.WithMethod(http.MethodPost),
		gateway.WithBody(map[string]string{
			"job_id":     jobID,
			"student_id": user.ID,
		}),
	)

	c.Status(http.StatusOK)
	var component templ.Component
	if res.Success {
		component = ui.Alert(ui.AlertSuccess, "Application submitted")
	} else {
		component = ui.Alert(ui.AlertError, res.Err)
	}
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("Failed to render alert", zap.Error(err))
	}
}

func (h *Handlers) Applications(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	res := gateway.Fetch[[]models.Application](c.Request.Context(), h.gw,
		"/applications/student/"+url.PathEscape(user.ID))
	h.render(c, "Applications", ApplicationsContent(res))
}

func (h *Handlers) Startups(c *gin.Context) {
	res := gateway.Fetch[[]models.Startup](c.Request.Context(), h.gw, "/startups")
	h.render(c, "Startups", StartupsContent(res))
}

func (h *Handlers) StartupDetail(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var startupRes gateway.Result[models.Startup]
	var jobsRes gateway.Result[[]models.Job]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		startupRes = gateway.Fetch[models.Startup](gctx, h.gw, "/startups/"+url.PathEscape(id))
		return nil
	})
	g.Go(func() error {
		jobsRes = gateway.Fetch[[]models.Job](gctx, h.gw, "/startups/"+url.PathEscape(id)+"/jobs")
		return nil
	})
	_ = g.Wait()

	h.render(c, "Startup", StartupDetailContent(startupRes, jobsRes))
}

// Feed shows updates posted by startups the student follows.
func (h *Handlers) Feed(c *gin.Context) {
	res := gateway.Fetch[[]models.StartupUpdate](c.Request.Context(), h.gw, "/updates/feed")
	h.render(c, "Feed", FeedContent(res))
}

// Profile renders the student variant of the profile union. A missing
// profile routes to the create form instead of an error.
func (h *Handlers) Profile(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	res := gateway.Fetch[models.StudentProfile](c.Request.Context(), h.gw,
		"/profiles/student/"+url.PathEscape(user.ID))
	if !res.Success {
		c.Redirect(http.StatusSeeOther, "/student/create-profile")
		return
	}

	profile := models.NewStudentProfile(&res.Data)
	h.render(c, "Profile", ProfileContent(profile))
}

func (h *Handlers) CreateProfileForm(c *gin.Context) {
	h.render(c, "Create profile", CreateProfileFormContent())
}

// CreateProfile submits the student profile to the backend.
func (h *Handlers) CreateProfile(c *gin.Context) {
	user := middleware.GetUserFromContext(c)

	gradYear, _ := strconv.Atoi(c.PostForm("grad_year"))
	skills := splitSkills(c.PostForm("skills"))

	profile := models.StudentProfile{
		UserID:     user.ID,
		FullName:   c.PostForm("full_name"),
		University: c.PostForm("university"),
		Degree:     c.PostForm("degree"),
		GradYear:   gradYear,
		Skills:     skills,
		Bio:        c.PostForm("bio"),
	}
	if profile.FullName == "" {
		c.Status(http.StatusBadRequest)
		if err := ui.Alert(ui.AlertError, "Full name is required").Render(c.Request.Context(), c.Writer); err != nil {
			h.logger.Error("Failed to render alert", zap.Error(err))
		}
		return
	}

	res := gateway.Fetch[models.StudentProfile](c.Request.Context(), h.gw, "/profiles/student",
		gateway.WithMethod(http.MethodPost),
		gateway.WithBody(profile),
	)
	if !res.Success {
		c.Status(http.StatusBadGateway)
		if err := ui.Alert(ui.AlertError, res.Err).Render(c.Request.Context(), c.Writer); err != nil {
			h.logger.Error("Failed to render alert", zap.Error(err))
		}
		return
	}

	h.logger.Info("Student profile created", zap.String("user_id", user.ID))
	c.Header("HX-Redirect", "/student/profile")
	c.Status(http.StatusOK)
}

func splitSkills(raw string) []string {
	var skills []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
