package router

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/littlelemon/backend/internal/domain/identity"
	"github.com/littlelemon/backend/internal/infrastructure/auth"
	"github.com/littlelemon/backend/internal/infrastructure/config"
	"github.com/littlelemon/backend/internal/interfaces/http/handler"
	"github.com/littlelemon/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers collects everything the router mounts
type Handlers struct {
	MenuItems    *handler.MenuItemHandler
	Categories   *handler.CategoryHandler
	Cart         *handler.CartHandler
	Ratings      *handler.RatingHandler
	Bookings     *handler.BookingHandler
	Auth         *handler.AuthHandler
	ManagerGroup *handler.GroupHandler
	DeliveryCrew *handler.GroupHandler
	System       *handler.SystemHandler
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
	}
}

// New assembles the gin engine: global middleware, then every route
// group with its role gate and throttle class.
func New(cfg *config.Config, jwtService *auth.JWTService, throttler *middleware.Throttler, h Handlers, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(),
		middleware.Authenticate(jwtService),
	)

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")

	var limit, authLimit gin.HandlerFunc
	if cfg.Throttle.Enabled {
		limit = throttler.Limit(int64(cfg.Throttle.AnonRequests), int64(cfg.Throttle.UserRequests))
		authLimit = throttler.LimitScoped("auth", int64(cfg.Throttle.AuthRequests))
		api.Use(limit)
	}

	manager := middleware.RequireRole(identity.RoleManager)
	admin := middleware.RequireRole(identity.RoleAdmin)
	authed := middleware.RequireAuth()

	menuItems := api.Group("/menu-items")
	{
		menuItems.GET("", h.MenuItems.List)
		menuItems.GET("/:id", h.MenuItems.Get)
		menuItems.POST("", manager, h.MenuItems.Create)
		menuItems.PUT("/:id", manager, h.MenuItems.Update)
		menuItems.PATCH("/:id", manager, h.MenuItems.Update)
		menuItems.DELETE("/:id", manager, h.MenuItems.Delete)
	}

	category := api.Group("/category")
	{
		category.GET("", h.Categories.List)
		category.GET("/:id", h.Categories.Get)
		category.POST("", manager, h.Categories.Create)
		category.DELETE("/:id", manager, h.Categories.Delete)
	}

	cart := api.Group("/cart/menu-items", authed)
	{
		cart.GET("", h.Cart.List)
		cart.POST("", h.Cart.Add)
		cart.DELETE("", h.Cart.Clear)
	}

	ratings := api.Group("/ratings", authed)
	{
		ratings.GET("", h.Ratings.List)
		ratings.POST("", h.Ratings.Submit)
	}

	bookings := api.Group("/bookings", authed)
	{
		bookings.GET("", h.Bookings.List)
		bookings.POST("", h.Bookings.Create)
	}

	authGroup := api.Group("/auth")
	if authLimit != nil {
		authGroup.Use(authLimit)
	}
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	groups := api.Group("/groups", admin)
	{
		groups.GET("/manager/users", h.ManagerGroup.ListMembers)
		groups.POST("/manager/users", h.ManagerGroup.AddMember)
		groups.DELETE("/manager/users/:username", h.ManagerGroup.RemoveMember)

		groups.GET("/delivery-crew/users", h.DeliveryCrew.ListMembers)
		groups.POST("/delivery-crew/users", h.DeliveryCrew.AddMember)
		groups.DELETE("/delivery-crew/users/:username", h.DeliveryCrew.RemoveMember)
	}

	return engine
}
