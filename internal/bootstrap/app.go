package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	httpHandler "svg-plotter/internal/handler/http"
	wsHandler "svg-plotter/internal/handler/websocket"
	"svg-plotter/internal/infra/setup"
	"svg-plotter/internal/middleware"
	"svg-plotter/internal/plot"
	"svg-plotter/internal/render"
	"svg-plotter/internal/service"
)

// App 结构体包含应用的所有组件和配置
type App struct {
	Config      *Config
	Log         *logrus.Logger
	RedisClient *redis.Client // 未配置 REDIS_ADDR 时为 nil
	Router      *gin.Engine
	HttpServer  *http.Server
}

// NewLogger 根据配置创建 logger
func NewLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel) // cfg.LogLevel 已被 LoadConfig 验证
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	return log
}

// NewApp 创建并初始化应用的所有组件
func NewApp() (*App, error) {
	// 1. 加载配置
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}
	return NewAppWithConfig(cfg)
}

// NewAppWithConfig 使用给定配置组装应用
func NewAppWithConfig(cfg *Config) (*App, error) {
	// 2. 初始化 Logger
	log := NewLogger(cfg)
	// 包级 logrus 调用 (service/handler 层) 使用同样的格式和级别
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(log.Level)
	log.Infof("Logger initialized (Level: %s, Format: %T)", log.Level.String(), log.Formatter)

	// 3. 初始化基础设施 (可选)
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		client, err := setup.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to init Redis: %w", err)
		}
		redisClient = client
	} else {
		log.Info("REDIS_ADDR not set, rate limiting disabled")
	}

	return assemble(cfg, log, redisClient), nil
}

func assemble(cfg *Config, log *logrus.Logger, redisClient *redis.Client) *App {
	// 4. 初始化 Service
	canvas := render.Canvas{Width: cfg.CanvasWidth, Height: cfg.CanvasHeight}
	plotService := service.NewPlotService(plot.DefaultSource(), canvas)

	// 5. 初始化 Handlers
	plotHandler := httpHandler.NewPlotHandler(plotService)
	previewHandler := wsHandler.NewPreviewHandler(plotService, cfg.CORSAllowedOrigin)

	// 6. 初始化 Gin Engine 和路由
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	router.GET("/", plotHandler.Index)
	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })

	api := router.Group("/api")
	if redisClient != nil {
		api.Use(middleware.RateLimit(redisClient, cfg.KeyPrefix, cfg.RateLimitMax, cfg.RateLimitWindow))
	}
	{
		api.POST("/plot", plotHandler.Draw)
		api.POST("/plot/svg", plotHandler.DrawSVG)
		api.POST("/plot/check", plotHandler.Check)
	}
	router.GET("/ws/plot", previewHandler.HandleConnection)
	log.Info("Router setup complete")

	// 7. 初始化 HTTP 服务器
	httpServer := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		RedisClient: redisClient,
		Router:      router,
		HttpServer:  httpServer,
	}
}

// Start 启动 HTTP 服务器
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown 优雅地关闭应用
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	// 1. 优雅关闭 HTTP 服务器
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	// 2. 关闭 Redis 连接
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Log.Errorf("Error closing Redis connection: %v", err)
		} else {
			a.Log.Info("Redis connection closed.")
		}
	}

	a.Log.Info("Application shutdown complete.")
}
