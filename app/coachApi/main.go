package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/salescoachapi/goSalesCoach/business/analysis"
	"github.com/salescoachapi/goSalesCoach/business/coaching"
	"github.com/salescoachapi/goSalesCoach/business/worker"
	"github.com/salescoachapi/goSalesCoach/foundation/external/transcriber"
	"github.com/salescoachapi/goSalesCoach/foundation/lexicon"
	"github.com/salescoachapi/goSalesCoach/foundation/logger"
	"github.com/salescoachapi/goSalesCoach/foundation/pubsub"
	"github.com/salescoachapi/goSalesCoach/foundation/registry"
)

var (
	version   string
	buildTime string
)

func main() {
	// =================================================================================================================
	// Configuration

	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, using environment variables")
	}

	cfg := struct {
		conf.Version
		Web struct {
			Host              string        `conf:"default:0.0.0.0:8000"`
			ReadTimeout       time.Duration `conf:"default:10s"`
			WriteTimeout      time.Duration `conf:"default:60s"`
			IdleTimeout       time.Duration `conf:"default:120s"`
			ShutdownTimeout   time.Duration `conf:"default:10s"`
			ResultWaitTimeout time.Duration `conf:"default:30s"`
		}
		Worker struct {
			QueueCapacity   int           `conf:"default:64"`
			AnalysisTimeout time.Duration `conf:"default:60s"`
			SweepInterval   time.Duration `conf:"default:1m"`
			JobRetention    time.Duration `conf:"default:15m"`
		}
		Transcriber struct {
			ApiEndpoint string
			ApiKey      string `conf:"noprint"`
		}
		Logger struct {
			LogDirectory string
		}
	}{
		Version: conf.Version{
			Build: version,
			Desc:  buildTime,
		},
	}

	help, err := conf.Parse("COACH", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return
		}
		fmt.Println(err)
		os.Exit(1)
	}

	// =================================================================================================================
	// Application Logger

	log, err := logger.New(cfg.Logger.LogDirectory, "coachApi")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	out, err := conf.String(&cfg)
	if err != nil {
		log.Errorw("startup", "ERROR", err)
	}
	log.Infow("startup", "config", out)

	// =================================================================================================================
	// Analysis Pipeline

	lexicons := lexicon.Default()
	orchestrator := analysis.NewOrchestrator(lexicons, log)
	engine := coaching.NewEngine(log, coaching.DefaultThresholds())
	jobs := registry.New[worker.Outcome](cfg.Worker.JobRetention)
	broker := pubsub.NewBroker()

	// =================================================================================================================
	// Run Worker

	w, workerCh := worker.Run(worker.Settings{
		Logger:       log,
		Orchestrator: orchestrator,
		Engine:       engine,
		Registry:     jobs,
		Broker:       broker,
		Config: worker.Config{
			QueueCapacity:   cfg.Worker.QueueCapacity,
			AnalysisTimeout: cfg.Worker.AnalysisTimeout,
			SweepInterval:   cfg.Worker.SweepInterval,
		},
	})

	// =================================================================================================================
	// HTTP Surface

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), cors())

	h := Handlers{
		Logger:       log,
		Worker:       w,
		Registry:     jobs,
		Broker:       broker,
		Orchestrator: orchestrator,
		Engine:       engine,
		Transcriber:  transcriber.New(cfg.Transcriber.ApiEndpoint, cfg.Transcriber.ApiKey),
		WaitTimeout:  cfg.Web.ResultWaitTimeout,
	}
	h.Routes(router)

	api := http.Server{
		Addr:         cfg.Web.Host,
		Handler:      router,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Infow("startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// =================================================================================================================
	// Shutdown

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Errorw("shutdown", "ERROR", err)
		w.Shutdown(nil)

	case err := <-workerCh:
		log.Errorw("shutdown", "ERROR", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			log.Errorw("shutdown", "ERROR", err)
		}

		w.Shutdown(nil)
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
