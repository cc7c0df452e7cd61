package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/hotel-reservation/internal/config"
    "github.com/iliyamo/hotel-reservation/internal/handler"
    "github.com/iliyamo/hotel-reservation/internal/middleware"
    "github.com/iliyamo/hotel-reservation/internal/model"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently this is only the health check used by load balancers and
// monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the staff authentication endpoints.  Token
// issuing operations live under /v1/auth and need no session; /v1/me
// requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    g.POST("/refresh", a.Refresh)
    // Logout accepts either a refresh token in the body or a bearer
    // token; it therefore stays outside the protected group.
    g.POST("/logout", a.Logout)

    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.GET("/me", a.Me)
    auth.PUT("/me/password", a.ChangePassword)
}

// RegisterHotel wires the front-desk API.  Every endpoint requires an
// authenticated staff session; destructive inventory operations are
// limited to ADMIN.  The dashboard sits behind the Redis response cache
// and all routes share the token-bucket rate limiter.
func RegisterHotel(
    e *echo.Echo,
    cfg config.Config,
    rdb *redis.Client,
    rooms *handler.RoomHandler,
    guests *handler.GuestHandler,
    reservations *handler.ReservationHandler,
    dashboard *handler.DashboardHandler,
) {
    v1 := e.Group("/v1")
    v1.Use(middleware.JWTAuth(cfg.JWTSecret))
    v1.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
    if rdb != nil {
        v1.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    }

    // Room inventory.  The static /rooms/available segment must be
    // registered alongside the :number param route; Echo matches static
    // paths first.
    v1.GET("/rooms", rooms.List)
    v1.GET("/rooms/available", rooms.Available)
    v1.GET("/rooms/:number", rooms.Get)
    v1.POST("/rooms", rooms.Create, middleware.RequireRole(model.RoleAdmin))
    v1.PUT("/rooms/:number/maintenance", rooms.Maintenance, middleware.RequireRole(model.RoleAdmin))
    v1.DELETE("/rooms/:number", rooms.Delete, middleware.RequireRole(model.RoleAdmin))

    // Guest registry.
    v1.GET("/guests", guests.List)
    v1.GET("/guests/:id", guests.Get)
    v1.POST("/guests", guests.Create)
    v1.PUT("/guests/:id", guests.Update)
    v1.DELETE("/guests/:id", guests.Delete, middleware.RequireRole(model.RoleAdmin))
    v1.GET("/guests/:id/reservations", reservations.ByGuest)

    // Reservation lifecycle.  Cancel is exposed both as DELETE and as
    // an explicit action route.
    v1.GET("/reservations", reservations.List)
    v1.GET("/reservations/:id", reservations.Get)
    v1.POST("/reservations", reservations.Create)
    v1.POST("/reservations/:id/check-in", reservations.CheckIn)
    v1.POST("/reservations/:id/check-out", reservations.CheckOut)
    v1.POST("/reservations/:id/cancel", reservations.Cancel)
    v1.DELETE("/reservations/:id", reservations.Cancel)

    // Payments and the daily summary.  The summary is cacheable; a
    // short TTL keeps counts fresh enough for the front desk.
    v1.GET("/payments", dashboard.PaymentList)
    v1.GET("/payments/:id", dashboard.PaymentGet)
    if rdb != nil {
        v1.GET("/dashboard", dashboard.Summary, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
    } else {
        v1.GET("/dashboard", dashboard.Summary)
    }
}
