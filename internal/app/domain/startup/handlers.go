// Package startup serves the startup area: posting jobs, reviewing
// applicants, publishing updates and the company profile.
package startup

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
	if err := ui.StartupPage(title, user, c.Request.URL.Path, content).
		Render(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("Failed to render page", zap.Error(err))
	}
}

func (h *Handlers) renderAlert(c *gin.Context, status int, kind ui.AlertKind, message string) {
	c.Status(status)
	if err := ui.Alert(kind, message).Render(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("Failed to render alert", zap.Error(err))
	}
}

// Dashboard shows open roles next to the latest applicants.
func (h *Handlers) Dashboard(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	ctx := c.Request.Context()

	var jobsRes gateway.Result[[]models.Job]
	var applicantsRes gateway.Result[[]models.Applicant]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobsRes = gateway.Fetch[[]models.Job](gctx, h.gw, "/startups/"+url.PathEscape(user.ID)+"/jobs")
		return nil
	})
	g.Go(func() error {
		applicantsRes = gateway.Fetch[[]models.Applicant](gctx, h.gw, "/startups/"+url.PathEscape(user.ID)+"/applicants")
		return nil
	})
	_ = g.Wait()

	h.render(c, "Dashboard", DashboardContent(user, jobsRes, applicantsRes))
}

func (h *Handlers) Jobs(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	res := gateway.Fetch[[]models.Job](c.Request.Context(), h.gw,
		"/startups/"+url.PathEscape(user.ID)+"/jobs")
	h.render(c, "Jobs", JobsContent(res))
}

func (h *Handlers) JobDetail(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var jobRes gateway.Result[models.Job]
	var applicantsRes gateway.Result[[]models.Applicant]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobRes = gateway.Fetch[models.Job](gctx, h.gw, "/get-job/"+url.PathEscape(id))
		return nil
	})
	g.Go(func() error {
		applicantsRes = gateway.Fetch[[]models.Applicant](gctx, h.gw, "/jobs/"+url.PathEscape(id)+"/applicants")
		return nil
	})
	_ = g.Wait()

	h.render(c, "Job", JobDetailContent(jobRes, applicantsRes))
}

// PostJob publishes a new role through the backend.
func (h *Handlers) PostJob(c *gin.Context) {
	user := middleware.GetUserFromContext(c)

	title := c.PostForm("title")
	if title == "" {
		h.renderAlert(c, http.StatusBadRequest, ui.AlertError, "Job title is required")
		return
	}

	job := models.Job{
		Title:       title,
		StartupID:   user.ID,
		Location:    c.PostForm("location"),
		Type:        c.PostForm("type"),
		Salary:      c.PostForm("salary"),
		Tags:        splitTags(c.PostForm("tags")),
		Description: c.PostForm("description"),
	}

	res := gateway.Fetch[models.Job](c.Request.Context(), h.gw, "/jobs",
		gateway.WithMethod(http.MethodPost),
		gateway.WithBody(job),
	)
	if !res.Success {
		h.renderAlert(c, http.StatusBadGateway, ui.AlertError, res.Err)
		return
	}

	h.logger.Info("Job posted", zap.String("startup_id", user.ID), zap.String("job_id", res.Data.ID))
	c.Header("HX-Redirect", "/startup/jobs")
	c.Status(http.StatusOK)
}

func (h *Handlers) Applicants(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	res := gateway.Fetch[[]models.Applicant](c.Request.Context(), h.gw,
		"/startups/"+url.PathEscape(user.ID)+"/applicants")
	h.render(c, "Applicants", ApplicantsContent(res))
}

// UpdateApplicantStatus moves an application along the pipeline. The
// row re-renders in place via HTMX.
func (h *Handlers) UpdateApplicantStatus(c *gin.Context) {
	id := c.Param("id")
	status := c.PostForm("status")

	res := gateway.Fetch[models.Applicant](c.Request.Context(), h.gw,
		"/applications/"+url.PathEscape(id)+"/status",
		gateway.WithMethod(http.MethodPut),
		gateway.WithBody(map[string]string{"status": status}),
	)
	if !res.Success {
		h.renderAlert(c, http.StatusBadGateway, ui.AlertError, res.Err)
		return
	}

	c.Status(http.StatusOK)
	if err := applicantRow(res.Data).Render(c.Request.Context(), c.Writer); err != nil {
		h.logger.Error("Failed to render applicant row", zap.Error(err))
	}
}

func (h *Handlers) Updates(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	res := gateway.Fetch[[]models.StartupUpdate](c.Request.Context(), h.gw,
		"/startups/"+url.PathEscape(user.ID)+"/updates")
	h.render(c, "Updates", UpdatesContent(res))
}

// PostUpdate publishes an update to followers' feeds.
func (h *Handlers) PostUpdate(c *gin.Context) {
	user := middleware.GetUserFromContext(c)

	title := c.PostForm("title")
	body := c.PostForm("body")
	if title == "" || body == "" {
		h.renderAlert(c, http.StatusBadRequest, ui.AlertError, "Title and body are required")
		return
	}

	res := gateway.Fetch[models.StartupUpdate](c.Request.Context(), h.gw, "/updates",
		gateway.WithMethod(http.MethodPost),
		gateway.WithBody(models.StartupUpdate{StartupID: user.ID, Title: title, Body: body}),
	)
	if !res.Success {
		h.renderAlert(c, http.StatusBadGateway, ui.AlertError, res.Err)
		return
	}

	c.Header("HX-Redirect", "/startup/updates")
	c.Status(http.StatusOK)
}

// Profile renders the startup variant of the profile union.
func (h *Handlers) Profile(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	res := gateway.Fetch[models.StartupProfileData](c.Request.Context(), h.gw,
		"/profiles/startup/"+url.PathEscape(user.ID))
	if !res.Success {
		c.Redirect(http.StatusSeeOther, "/startup/create-profile")
		return
	}

	profile := models.NewStartupProfile(&res.Data)
	h.render(c, "Profile", ProfileContent(profile))
}

func (h *Handlers) CreateProfileForm(c *gin.Context) {
	h.render(c, "Create profile", CreateProfileFormContent())
}

func (h *Handlers) CreateProfile(c *gin.Context) {
	user := middleware.GetUserFromContext(c)

	teamSize, _ := strconv.Atoi(c.PostForm("team_size"))
	profile := models.StartupProfileData{
		UserID:      user.ID,
		CompanyName: c.PostForm("company_name"),
		Website:     c.PostForm("website"),
		Industry:    c.PostForm("industry"),
		TeamSize:    teamSize,
		Pitch:       c.PostForm("pitch"),
	}
	if profile.CompanyName == "" {
		h.renderAlert(c, http.StatusBadRequest, ui.AlertError, "Company name is required")
		return
	}

	res := gateway.Fetch[models.StartupProfileData](c.Request.Context(), h.gw, "/profiles/startup",
		gateway.WithMethod(http.MethodPost),
		gateway.WithBody(profile),
	)
	if !res.Success {
		h.renderAlert(c, http.StatusBadGateway, ui.AlertError, res.Err)
		return
	}

	h.logger.Info("Startup profile created", zap.String("user_id", user.ID))
	c.Header("HX-Redirect", "/startup/profile")
	c.Status(http.StatusOK)
}

func splitTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
