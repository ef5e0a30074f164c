package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/starcode/library-api/docs"
	"github.com/starcode/library-api/internal/api/handler"
	"github.com/starcode/library-api/internal/api/middleware"
	"github.com/starcode/library-api/internal/core/domain"
	"github.com/starcode/library-api/internal/core/ports"
	"github.com/starcode/library-api/internal/core/service"
	"github.com/starcode/library-api/internal/infrastructure/config"
	mongorepo "github.com/starcode/library-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/starcode/library-api/internal/infrastructure/db/redis"
	"github.com/starcode/library-api/pkg/logger"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, files ports.FileStorage) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("library"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Component("http"))
	e.Validator = handler.NewValidator()
	e.Binder = handler.NewBinder()

	// --- Services ---
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	throttle := redisinfra.NewSigninThrottle(rdb, cfg.Auth.MaxAttempts, cfg.Auth.AttemptWindow)
	authService := service.NewAuthService(mongorepo.NewAuthRepository(db), tokens, throttle, logger.Component("auth"))
	personService := service.NewPersonService(mongorepo.NewPersonRepository(db), logger.Component("person"))
	bookService := service.NewBookService(mongorepo.NewBookRepository(db), logger.Component("book"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	personHandler := handler.NewPersonHandler(personService)
	bookHandler := handler.NewBookHandler(bookService)
	mathHandler := handler.NewMathHandler()
	fileHandler := handler.NewFileHandler(files)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Open routes ---
	e.POST("/auth/signin", authHandler.SignIn)
	e.PUT("/auth/refresh/:username", authHandler.Refresh)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Protected API ---
	api := e.Group("/api/v1", middleware.Auth(tokens))

	person := api.Group("/person")
	person.GET("", personHandler.List)
	person.GET("/find-by-name/:firstName", personHandler.FindByName)
	person.GET("/:id", personHandler.Get)
	person.POST("", personHandler.Create)
	person.PUT("", personHandler.Update)
	person.PATCH("/:id", personHandler.Disable)
	person.DELETE("/:id", personHandler.Delete, middleware.RequireRole(domain.RoleAdmin))

	book := api.Group("/book")
	book.GET("", bookHandler.List)
	book.GET("/find-by-title/:title", bookHandler.FindByTitle)
	book.GET("/:id", bookHandler.Get)
	book.POST("", bookHandler.Create)
	book.PUT("", bookHandler.Update)
	book.DELETE("/:id", bookHandler.Delete, middleware.RequireRole(domain.RoleAdmin))

	math := api.Group("/math")
	math.GET("/sum/:a/:b", mathHandler.Sum)
	math.GET("/sub/:a/:b", mathHandler.Sub)
	math.GET("/mul/:a/:b", mathHandler.Mul)
	math.GET("/div/:a/:b", mathHandler.Div)
	math.GET("/avg/:a/:b", mathHandler.Avg)
	math.GET("/sqrt/:a", mathHandler.Sqrt)

	file := api.Group("/file")
	file.POST("/upload", fileHandler.Upload)
	file.POST("/upload-multiple", fileHandler.UploadMultiple)
	file.GET("/download/:name", fileHandler.Download)

	return e
}
