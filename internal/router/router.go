// Package router wires handlers, middleware and documentation into a Gin engine.
package router

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"costmanager/internal/config"
	_ "costmanager/internal/docs" // Import swagger docs
	"costmanager/internal/handlers"
	"costmanager/internal/middleware"
	"costmanager/internal/services"
	"costmanager/web"
)

// Services bundles the business services the API depends on.
type Services struct {
	Users   services.UserServicer
	Costs   services.CostServicer
	Reports services.ReportServicer
	Logs    services.LogServicer
}

// Setup builds the Gin engine with every route of the API.
func Setup(cfg *config.Config, svc Services) (*gin.Engine, error) {
	tmpl, err := template.ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	addHandler := handlers.NewAddHandler(svc.Users, svc.Costs, svc.Logs, cfg.Categories)
	userHandler := handlers.NewUserHandler(svc.Users, svc.Logs)
	reportHandler := handlers.NewReportHandler(svc.Reports, svc.Logs)
	logHandler := handlers.NewLogHandler(svc.Logs)
	aboutHandler := handlers.NewAboutHandler(cfg.Team, svc.Logs)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.RequestLogSaver(svc.Logs))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", handlers.Landing(cfg))
	router.GET("/health", handlers.Health)

	api := router.Group("/api")
	api.GET("/about", aboutHandler.GetAbout)
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUserDetails)
	api.POST("/add", addHandler.Add)
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		api.Handle(method, "/add", addHandler.MethodNotAllowed)
	}
	api.GET("/report", reportHandler.GetReport)
	api.GET("/logs", logHandler.ListLogs)

	return router, nil
}
