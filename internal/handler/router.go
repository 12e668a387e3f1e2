package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dogecoinfoundation/doge-prize/internal/handler/api"
	"github.com/dogecoinfoundation/doge-prize/internal/handler/middleware"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Redeem   *api.RedeemHandler
	Transfer *api.TransferHandler
	Auth     *api.AuthHandler
	Prize    *api.PrizeHandler
	Pool     *api.PoolHandler
	Balance  *api.BalanceHandler
	Audit    *api.AuditHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
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

	apiGroup := engine.Group("/api")
	{
		// Public surface: redemption and payout are driven by the code
		// itself, not by a session.
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/redeem", Handler: h.Redeem.Redeem},
			{Method: http.MethodPost, Path: "/transfer", Handler: h.Transfer.Transfer},
		})

		// Report paths match the original client, protection does not
		// follow the /admin prefix here.
		adminOnly := []gin.HandlerFunc{authMiddleware.RequireAdmin()}
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/prizes/required-balance", Handler: h.Balance.RequiredBalance, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/wallet/balance", Handler: h.Balance.WalletBalance, Mw: adminOnly},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/set-password", Handler: h.Auth.SetPassword},
				{Method: http.MethodGet, Path: "/check-password", Handler: h.Auth.CheckPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/change-password", Handler: h.Auth.ChangePassword},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/prizes", Handler: h.Prize.List},
				{Method: http.MethodPost, Path: "/prizes", Handler: h.Prize.Create},
				{Method: http.MethodPost, Path: "/prizes/import", Handler: h.Prize.ImportCSV},
				{Method: http.MethodPut, Path: "/prizes/:id", Handler: h.Prize.Update},
				{Method: http.MethodDelete, Path: "/prizes/:id", Handler: h.Prize.Delete},

				{Method: http.MethodGet, Path: "/prize-pool", Handler: h.Pool.List},
				{Method: http.MethodPost, Path: "/prize-pool", Handler: h.Pool.Upsert},
				{Method: http.MethodPut, Path: "/prize-pool/:id", Handler: h.Pool.Update},
				{Method: http.MethodDelete, Path: "/prize-pool/:id", Handler: h.Pool.Delete},

				{Method: http.MethodGet, Path: "/audit", Handler: h.Audit.List},
			})
		}
	}
}

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
