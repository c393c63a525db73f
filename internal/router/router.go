package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bnbhub/internal/config"
	"bnbhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	ownerHandler *handler.OwnerHandler,
	listingHandler *handler.ListingHandler,
	messageHandler *handler.MessageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Backend is running"})
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Owner routes
	owners := api.Group("/owners")
	owners.POST("/register", ownerHandler.Register)
	owners.POST("/login", ownerHandler.Login)
	owners.GET("/host/:id", ownerHandler.HostContact)

	// Listing routes
	bnbs := api.Group("/bnbs")
	bnbs.POST("/add", listingHandler.Add)
	bnbs.GET("/", listingHandler.List)
	bnbs.GET("/owner/:email", listingHandler.ListByOwner)
	bnbs.GET("/:id", listingHandler.Get)
	bnbs.PUT("/:id", listingHandler.Update)
	bnbs.PUT("/:id/availability", listingHandler.SetAvailability)
	bnbs.DELETE("/:id", listingHandler.Delete)

	// Contact inbox routes
	chat := api.Group("/chat")
	chat.POST("/", messageHandler.Submit)
	chat.GET("/", messageHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
