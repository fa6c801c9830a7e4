package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/seedinglab/seedops/service/campaign"
	"github.com/seedinglab/seedops/service/catalog"
	"github.com/seedinglab/seedops/service/guide"
	"github.com/seedinglab/seedops/service/messaging"
	"github.com/seedinglab/seedops/service/report"
)

// Dependencies collects what the router needs.
type Dependencies struct {
	Logger         *zap.Logger
	TracerProvider trace.TracerProvider

	CampaignService  *campaign.Service
	MessagingService *messaging.Service
	GuideService     *guide.Service
	CatalogService   *catalog.Service
	ReportService    *report.Service
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(deps Dependencies) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(loggerMiddleware(deps.Logger))
	engine.Use(metricsMiddleware())
	engine.Use(tracingMiddleware(deps.TracerProvider))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	projectHandler := NewProjectHandler(deps.CampaignService)
	influencerHandler := NewInfluencerHandler(deps.CampaignService)
	templateHandler := NewTemplateHandler(deps.MessagingService)
	guideHandler := NewGuideHandler(deps.GuideService)
	skuHandler := NewSKUHandler(deps.CatalogService)
	reportHandler := NewReportHandler(deps.ReportService)

	api := engine.Group("/api")

	projects := api.Group("/projects")
	{
		projects.POST("", projectHandler.Create)
		projects.GET("", projectHandler.List)
		projects.GET("/:id", projectHandler.Get)
		projects.PATCH("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)

		projects.GET("/:id/influencers", influencerHandler.ListByProject)
		projects.POST("/:id/influencers", influencerHandler.Add)
		projects.GET("/:id/funnel", projectHandler.Funnel)
		projects.GET("/:id/export", projectHandler.Export)
		projects.POST("/:id/tracking-import", projectHandler.TrackingImport)
	}

	influencers := api.Group("/influencers")
	{
		influencers.GET("/:id", influencerHandler.Get)
		influencers.PATCH("/:id", influencerHandler.Update)
		influencers.DELETE("/:id", influencerHandler.Delete)
		influencers.PUT("/:id/status", influencerHandler.UpdateStatus)
		influencers.PUT("/status", influencerHandler.BulkUpdateStatus)
	}

	templates := api.Group("/templates")
	{
		templates.POST("", templateHandler.Create)
		templates.GET("", templateHandler.List)
		templates.GET("/:id", templateHandler.Get)
		templates.PUT("/:id", templateHandler.Update)
		templates.DELETE("/:id", templateHandler.Delete)
		templates.POST("/:id/use", templateHandler.Use)
		templates.POST("/:id/render", templateHandler.Render)
	}

	guides := api.Group("/guides")
	{
		guides.POST("", guideHandler.Create)
		guides.GET("", guideHandler.List)
		guides.GET("/:id", guideHandler.Get)
		guides.PATCH("/:id", guideHandler.Update)
		guides.DELETE("/:id", guideHandler.Delete)
		guides.POST("/:id/publish", guideHandler.Publish)
		guides.POST("/:id/unpublish", guideHandler.Unpublish)
	}

	skus := api.Group("/skus")
	{
		skus.POST("", skuHandler.Upsert)
		skus.GET("", skuHandler.List)
		skus.GET("/:code", skuHandler.Get)
		skus.DELETE("/:code", skuHandler.Delete)
		skus.POST("/import", skuHandler.Import)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/monthly", reportHandler.Monthly)
		reports.GET("/channels", reportHandler.Channels)
		reports.GET("/products", reportHandler.Products)
	}

	// public guide view, no /api prefix
	engine.GET("/g/:slug", guideHandler.Public)

	return engine
}
