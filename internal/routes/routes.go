package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homerepair/internal/auth"
	"homerepair/internal/database"
	"homerepair/internal/handlers"
	"homerepair/internal/middleware"
	"homerepair/internal/revocation"
)

// Dependencies is everything the route table needs.
type Dependencies struct {
	Store    database.Store
	Tokens   *auth.TokenService
	Cookies  auth.CookiePolicy
	Denylist revocation.Denylist
	Logger   *zap.Logger

	ClientOrigins    []string
	RequestTimeout   time.Duration
	DefaultPageLimit int64
	PopularLimit     int64
	RateLimitPerMin  int

	// TrustedProxies may set X-Forwarded-For; empty means the socket
	// address is the client IP.
	TrustedProxies []string
}

// NewRouter builds the engine with the middleware chain and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.L()
	}
	if deps.Denylist == nil {
		deps.Denylist = revocation.Noop{}
	}

	r := gin.New()
	if err := r.SetTrustedProxies(deps.TrustedProxies); err != nil {
		deps.Logger.Warn("invalid trusted proxies, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.ClientOrigins),
		middleware.RateLimit(deps.RateLimitPerMin),
	)

	RegisterAuthRoutes(r, deps)
	RegisterServiceRoutes(r, deps)
	RegisterBookingRoutes(r, deps)

	r.GET("/", handlers.Home())
	r.GET("/health", handlers.Health(deps.Store))
	return r
}

func RegisterAuthRoutes(r *gin.Engine, deps Dependencies) {
	r.POST("/jwt", handlers.IssueToken(deps.Tokens, deps.Cookies))
	r.POST("/logout", handlers.Logout(deps.Tokens, deps.Cookies, deps.Denylist))
}

func RegisterServiceRoutes(r *gin.Engine, deps Dependencies) {
	services := deps.Store.Services()
	timeout := deps.RequestTimeout
	guard := middleware.AuthGuard(deps.Tokens, deps.Denylist)

	r.GET("/all-services", handlers.GetAllServices(services, deps.DefaultPageLimit, timeout))
	r.GET("/service-count", handlers.GetServiceCount(services, timeout))
	r.GET("/popular-services", handlers.GetPopularServices(services, deps.PopularLimit, timeout))
	r.GET("/my-services", guard, handlers.GetMyServices(services, timeout))
	r.GET("/services/:id", handlers.GetService(services, timeout))
	r.POST("/add-service", handlers.AddService(services, timeout))
	r.PUT("/update-service/:id", handlers.UpdateService(services, timeout))
	r.DELETE("/delete-service/:id", handlers.DeleteService(services, timeout))
	r.GET("/search-services", handlers.SearchServices(services, timeout))
	r.GET("/search-services/:query", handlers.SearchServices(services, timeout))
}

func RegisterBookingRoutes(r *gin.Engine, deps Dependencies) {
	bookings := deps.Store.Bookings()
	timeout := deps.RequestTimeout
	guard := middleware.AuthGuard(deps.Tokens, deps.Denylist)

	r.POST("/book-service", handlers.BookService(bookings, timeout))
	r.GET("/booked-services", guard, handlers.GetBookedServices(bookings, timeout))
	r.GET("/service-to-do", guard, handlers.GetServiceToDo(bookings, timeout))
	r.PATCH("/update-status/:id", handlers.UpdateBookingStatus(bookings, timeout))
}
