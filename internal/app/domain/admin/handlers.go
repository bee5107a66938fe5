// Package admin serves the back-office area: platform dashboard, user
// management, startup oversight, update moderation and analytics.
// Accounts are managed against the local database; marketplace data
// still comes through the backend gateway.
package admin

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wostup/wostup-go/internal/app/gateway"
	"github.com/wostup/wostup-go/internal/app/middleware"
	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/session"
	"github.com/wostup/wostup-go/internal/app/ui"
)

const usersPageSize = 50

type Handlers struct {
	repo    Repo
	gw      *gateway.Client
	scanner *Scanner
	store   *session.Store
	logger  *zap.Logger
}

func NewHandlers(repo Repo, gw *gateway.Client, scanner *Scanner, store *session.Store, logger *zap.Logger) *Handlers {
	return &Handlers{
		repo:    repo,
		gw:      gw,
		scanner: scanner,
		store:   store,
		logger:  logger,
	}
}

func (h *Handlers) render(c *gin.Context, title string, content templ.Component) {
	user := middleware.GetUserFromContext(c)
	c.Status(http.StatusOK)
	if err := ui.AdminPage(title, user, c.Request.URL.Path, content).
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

// Dashboard shows platform-level counters: signups per role, live
// sessions and marketplace totals from the backend.
func (h *Handlers) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var counts map[models.Role]int
	var countsErr error
	var statsRes gateway.Result[map[string]int]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, countsErr = h.repo.CountUsersByRole(gctx)
		return nil
	})
	g.Go(func() error {
		statsRes = gateway.Fetch[map[string]int](gctx, h.gw, "/stats")
		return nil
	})
	_ = g.Wait()

	if countsErr != nil {
		h.logger.Error("Failed to count users", zap.Error(countsErr))
	}

	h.render(c, "Dashboard", DashboardContent(counts, h.store.ActiveSessions(), statsRes))
}

func (h *Handlers) Startups(c *gin.Context) {
	res := gateway.Fetch[[]models.Startup](c.Request.Context(), h.gw, "/startups")
	h.render(c, "Startups", StartupsContent(res))
}

func (h *Handlers) Users(c *gin.Context) {
	users, err := h.repo.ListUsers(c.Request.Context(), usersPageSize, 0)
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		h.render(c, "Users", ui.ErrorState("Could not load users"))
		return
	}
	h.render(c, "Users", UsersContent(users))
}

// VerifyUser marks an account verified. The row re-renders in place.
func (h *Handlers) VerifyUser(c *gin.Context) {
	userID := c.Param("id")

	if err := h.repo.VerifyUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.renderAlert(c, http.StatusNotFound, ui.AlertError, "User not found")
			return
		}
		h.logger.Error("Failed to verify user", zap.Error(err), zap.String("user_id", userID))
		h.renderAlert(c, http.StatusInternalServerError, ui.AlertError, "Could not verify user")
		return
	}

	h.logger.Info("User verified by admin", zap.String("user_id", userID))
	h.renderAlert(c, http.StatusOK, ui.AlertSuccess, "User verified")
}

// SetUserActive toggles an account on or off the platform.
func (h *Handlers) SetUserActive(c *gin.Context) {
	userID := c.Param("id")
	active := c.PostForm("active") == "true"

	if err := h.repo.SetUserActive(c.Request.Context(), userID, active); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.renderAlert(c, http.StatusNotFound, ui.AlertError, "User not found")
			return
		}
		h.logger.Error("Failed to toggle user", zap.Error(err), zap.String("user_id", userID))
		h.renderAlert(c, http.StatusInternalServerError, ui.AlertError, "Could not update user")
		return
	}

	h.logger.Info("User active flag changed",
		zap.String("user_id", userID),
		zap.Bool("active", active),
	)
	message := "User deactivated"
	if active {
		message = "User reactivated"
	}
	h.renderAlert(c, http.StatusOK, ui.AlertSuccess, message)
}

// Moderation pulls recent startup updates and runs them through the
// banned-term scanner.
func (h *Handlers) Moderation(c *gin.Context) {
	res := gateway.Fetch[[]models.StartupUpdate](c.Request.Context(), h.gw, "/updates/recent")
	if !res.Success {
		h.render(c, "Moderation", ui.ErrorState(res.Err))
		return
	}

	flagged, clean := h.scanner.ScanAll(res.Data)
	h.render(c, "Moderation", ModerationContent(res.Data, flagged, len(clean)))
}

// RemoveUpdate takes a flagged update down through the backend.
func (h *Handlers) RemoveUpdate(c *gin.Context) {
	id := c.Param("id")

	res := gateway.Fetch[struct{}](c.Request.Context(), h.gw,
		"/updates/"+url.PathEscape(id),
		gateway.WithMethod(http.MethodDelete),
	)
	if !res.Success {
		h.renderAlert(c, http.StatusBadGateway, ui.AlertError, res.Err)
		return
	}

	h.logger.Info("Update removed by moderation", zap.String("update_id", id))
	h.renderAlert(c, http.StatusOK, ui.AlertSuccess, "Update removed")
}

// Analytics combines local signup numbers with marketplace stats.
func (h *Handlers) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	var counts map[models.Role]int
	var countsErr error
	var statsRes gateway.Result[map[string]int]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, countsErr = h.repo.CountUsersByRole(gctx)
		return nil
	})
	g.Go(func() error {
		statsRes = gateway.Fetch[map[string]int](gctx, h.gw, "/stats")
		return nil
	})
	_ = g.Wait()

	if countsErr != nil {
		h.logger.Error("Failed to count users", zap.Error(countsErr))
	}

	h.render(c, "Analytics", AnalyticsContent(counts, h.store.ActiveSessions(), statsRes))
}
