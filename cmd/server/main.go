package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/seedinglab/seedops/config"
	"github.com/seedinglab/seedops/handler"
	"github.com/seedinglab/seedops/pkg/memtable"
	"github.com/seedinglab/seedops/pkg/otellib"
	"github.com/seedinglab/seedops/repository"
	"github.com/seedinglab/seedops/service/campaign"
	"github.com/seedinglab/seedops/service/catalog"
	"github.com/seedinglab/seedops/service/guide"
	"github.com/seedinglab/seedops/service/messaging"
	"github.com/seedinglab/seedops/service/report"
)

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	tracerProvider, shutdown := otellib.InitOtel("seedops-api", "local", conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	if conf.Log.Mode != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	projectRepo := repository.NewProject()
	influencerRepo := repository.NewInfluencer()
	templateRepo := repository.NewTemplate()
	guideRepo := repository.NewGuide()
	skuRepo := repository.NewSKU()
	salesRepo := repository.NewSales()

	guideCache := memtable.New(conf.Cache.GuideCacheSize)

	router := handler.NewRouter(handler.Dependencies{
		Logger:         logger,
		TracerProvider: tracerProvider,

		CampaignService:  campaign.NewService(provider, projectRepo, influencerRepo, logger),
		MessagingService: messaging.NewService(provider, templateRepo, influencerRepo, projectRepo),
		GuideService:     guide.NewService(provider, guideRepo, guideCache, conf.Cache.GuideCacheTTL),
		CatalogService:   catalog.NewService(provider, skuRepo),
		ReportService:    report.NewService(provider, salesRepo),
	})

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: router,
	}

	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())

	done := make(chan struct{})
	go func() {
		defer close(done)

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, os.Kill)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	<-done
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}
