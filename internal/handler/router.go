package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ecotrack/internal/domain/user"
	"ecotrack/internal/handler/api"
	"ecotrack/internal/handler/middleware"
	"ecotrack/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Profile     *api.ProfileHandler
	Marketplace *api.MarketplaceHandler
	Recycling   *api.RecyclingHandler
	Leaderboard *api.LeaderboardHandler
	Content     *api.ContentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: h.Auth.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password/:token", Handler: h.Auth.ResetPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		profile := apiGroup.Group("/profile")
		profile.Use(authMiddleware.RequireAuth())
		{
			addRoutes(profile, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Profile.GetProfile},
				{Method: http.MethodPatch, Path: "", Handler: h.Profile.UpdateProfile},
			})
		}

		vouchers := apiGroup.Group("/vouchers")
		{
			addRoutes(vouchers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Marketplace.ListVouchers, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Marketplace.GetVoucher},
				{Method: http.MethodPost, Path: "", Handler: h.Marketplace.CreateVoucher, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), adminOnly}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/redeem", Handler: h.Marketplace.Redeem, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			{Method: http.MethodGet, Path: "/redemptions", Handler: h.Marketplace.ListRedemptions, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			{Method: http.MethodGet, Path: "/progress", Handler: h.Recycling.GetProgress, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
		})

		logs := apiGroup.Group("/recycling-logs")
		logs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(logs, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Recycling.CreateLog},
				{Method: http.MethodGet, Path: "", Handler: h.Recycling.ListLogs},
			})
		}

		leaderboard := apiGroup.Group("/leaderboard")
		{
			addRoutes(leaderboard, []route{
				{Method: http.MethodGet, Path: "/users", Handler: h.Leaderboard.TopUsers},
				{Method: http.MethodGet, Path: "/countries", Handler: h.Leaderboard.TopCountries},
			})
		}

		locations := apiGroup.Group("/locations")
		{
			addRoutes(locations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Content.ListLocations},
				{Method: http.MethodPost, Path: "", Handler: h.Content.CreateLocation, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), adminOnly}},
			})
		}

		tips := apiGroup.Group("/tips")
		{
			addRoutes(tips, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Content.ListTips},
				{Method: http.MethodPost, Path: "", Handler: h.Content.CreateTip, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), adminOnly}},
				{Method: http.MethodPost, Path: "/send", Handler: h.Content.SendTips, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), adminOnly}},
			})
		}

		feedback := apiGroup.Group("/feedback")
		{
			addRoutes(feedback, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Content.SubmitFeedback},
				{Method: http.MethodGet, Path: "", Handler: h.Content.ListFeedback, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth(), adminOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
