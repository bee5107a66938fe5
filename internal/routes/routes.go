package routes

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/wostup/wostup-go/internal/app/domain/admin"
	"github.com/wostup/wostup-go/internal/app/domain/auth"
	"github.com/wostup/wostup-go/internal/app/domain/startup"
	"github.com/wostup/wostup-go/internal/app/domain/student"
	"github.com/wostup/wostup-go/internal/app/gateway"
	"github.com/wostup/wostup-go/internal/app/middleware"
	"github.com/wostup/wostup-go/internal/app/models"
	"github.com/wostup/wostup-go/internal/app/session"
	"github.com/wostup/wostup-go/internal/app/ui"
	"github.com/wostup/wostup-go/internal/pkg/config"
)

type AppHandlers struct {
	Auth    *auth.Handlers
	Student *student.Handlers
	Startup *startup.Handlers
	Admin   *admin.Handlers

	store      *session.Store
	cookieName string
	logger     *zap.Logger
}

// Setup wires repositories, services and handlers, then registers
// every route on the engine.
func Setup(r *gin.Engine, dbPool *pgxpool.Pool, cfg *config.Config, log *zap.Logger) *session.Store {
	handlers := setupDependencies(dbPool, cfg, log)
	setupRouter(r, handlers)
	return handlers.store
}

func setupDependencies(dbPool *pgxpool.Pool, cfg *config.Config, log *zap.Logger) *AppHandlers {
	authRepo := auth.NewPostgresRepo(dbPool, log)
	authService := auth.NewService(authRepo, log)
	store := session.NewStore(authService, cfg.Session, log)
	gw := gateway.NewClient(cfg.Backend, log)

	adminRepo := admin.NewPostgresRepo(dbPool, log)
	scanner := admin.NewScanner(admin.DefaultBannedTerms)

	return &AppHandlers{
		Auth:       auth.NewHandlers(store, authService, cfg.Session.CookieName, log),
		Student:    student.NewHandlers(gw, log),
		Startup:    startup.NewHandlers(gw, log),
		Admin:      admin.NewHandlers(adminRepo, gw, scanner, store, log),
		store:      store,
		cookieName: cfg.Session.CookieName,
		logger:     log,
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers) {
	renderPublic := func(c *gin.Context, title string, content templ.Component) {
		user := middleware.GetUserFromContext(c)
		c.Status(http.StatusOK)
		if err := ui.PublicPage(title, user, content).Render(c.Request.Context(), c.Writer); err != nil {
			h.logger.Error("Failed to render page", zap.Error(err))
		}
	}

	public := r.Group("/")
	public.Use(middleware.OptionalAuth(h.store, h.cookieName))
	{
		public.GET("/", func(c *gin.Context) {
			// A signed-in user landing on / goes straight to their area.
			if user := middleware.GetUserFromContext(c); user != nil {
				c.Redirect(http.StatusFound, auth.RoleHome(user.Role))
				return
			}
			renderPublic(c, "Welcome", ui.HomePage())
		})
		public.GET("/login", func(c *gin.Context) {
			renderPublic(c, "Sign in", auth.SignInPage())
		})
		public.GET("/register", func(c *gin.Context) {
			renderPublic(c, "Create account", auth.SignUpPage())
		})
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", gin.WrapF(h.Auth.LoginHandler))
		authGroup.POST("/register", gin.WrapF(h.Auth.RegisterHandler))
		authGroup.POST("/logout", gin.WrapF(h.Auth.LogoutHandler))
		authGroup.GET("/verify", gin.WrapF(h.Auth.VerifyHandler))
	}

	studentGroup := r.Group("/student")
	studentGroup.Use(
		middleware.Auth(h.store, h.cookieName),
		middleware.RequireRole(models.RoleStudent),
	)
	{
		studentGroup.GET("/dashboard", h.Student.Dashboard)
		studentGroup.GET("/jobs", h.Student.Jobs)
		studentGroup.GET("/jobs/:id", h.Student.JobDetail)
		studentGroup.POST("/jobs/:id/apply", h.Student.Apply)
		studentGroup.GET("/applications", h.Student.Applications)
		studentGroup.GET("/startups", h.Student.Startups)
		studentGroup.GET("/startups/:id", h.Student.StartupDetail)
		studentGroup.GET("/feed", h.Student.Feed)
		studentGroup.GET("/profile", h.Student.Profile)
		studentGroup.GET("/create-profile", h.Student.CreateProfileForm)
		studentGroup.POST("/create-profile", h.Student.CreateProfile)
	}

	startupGroup := r.Group("/startup")
	startupGroup.Use(
		middleware.Auth(h.store, h.cookieName),
		middleware.RequireRole(models.RoleStartup),
	)
	{
		startupGroup.GET("/dashboard", h.Startup.Dashboard)
		startupGroup.GET("/jobs", h.Startup.Jobs)
		startupGroup.POST("/jobs", h.Startup.PostJob)
		startupGroup.GET("/jobs/:id", h.Startup.JobDetail)
		startupGroup.GET("/applicants", h.Startup.Applicants)
		startupGroup.PUT("/applicants/:id/status", h.Startup.UpdateApplicantStatus)
		startupGroup.GET("/updates", h.Startup.Updates)
		startupGroup.POST("/updates", h.Startup.PostUpdate)
		startupGroup.GET("/profile", h.Startup.Profile)
		startupGroup.GET("/create-profile", h.Startup.CreateProfileForm)
		startupGroup.POST("/create-profile", h.Startup.CreateProfile)
	}

	adminGroup := r.Group("/admin")
	adminGroup.Use(
		middleware.Auth(h.store, h.cookieName),
		middleware.RequireRole(models.RoleAdmin),
	)
	{
		adminGroup.GET("/dashboard", h.Admin.Dashboard)
		adminGroup.GET("/startups", h.Admin.Startups)
		adminGroup.GET("/users", h.Admin.Users)
		adminGroup.POST("/users/:id/verify", h.Admin.VerifyUser)
		adminGroup.POST("/users/:id/active", h.Admin.SetUserActive)
		adminGroup.GET("/moderation", h.Admin.Moderation)
		adminGroup.DELETE("/moderation/updates/:id", h.Admin.RemoveUpdate)
		adminGroup.GET("/analytics", h.Admin.Analytics)
	}

	// Only exact routes exist; anything else, including unknown
	// subpaths of the role areas, lands on the 404 page.
	r.NoRoute(middleware.OptionalAuth(h.store, h.cookieName), func(c *gin.Context) {
		user := middleware.GetUserFromContext(c)
		c.Status(http.StatusNotFound)
		if err := ui.PublicPage("Not found", user, ui.NotFoundPage()).
			Render(c.Request.Context(), c.Writer); err != nil {
			h.logger.Error("Failed to render page", zap.Error(err))
		}
	})
}
