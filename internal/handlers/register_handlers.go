package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/maktab-hr/manpower_office_app/cmd/docs"
	portssvc "github.com/maktab-hr/manpower_office_app/internal/core/ports/services"
	"github.com/maktab-hr/manpower_office_app/internal/middleware"
	"github.com/maktab-hr/manpower_office_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes (login is rate limited per IP)
	registerAuthRoutes(r, services)

	setupAPIV1Routes(r, services, cfg)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-entity route registrations. Everything under /api/v1 requires a valid
// access token; edit and delete rights are enforced per route.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	cfg *config.Config,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerOrganizationRoutes(v1, services.Organization, services.Totals, services.DailyOperation, services.Transfer, services.Saudization)
	registerEmployeeRoutes(v1, services.Employee)
	registerDailyOperationRoutes(v1, services.DailyOperation)
	registerOfficeOperationRoutes(v1, services.OfficeOperation)
	registerTransferRoutes(v1, services.Transfer)
	registerSaudizationRoutes(v1, services.Saudization)
	registerDashboardRoutes(v1, services.Dashboard)
	registerUserRoutes(v1, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
