package bootstrap

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/tasktrack/tracker-backend/internal/api/http"
	"github.com/tasktrack/tracker-backend/internal/api/http/middleware"
	projecthttp "github.com/tasktrack/tracker-backend/internal/projects/http"
	projectrepo "github.com/tasktrack/tracker-backend/internal/projects/repository"
	projectservice "github.com/tasktrack/tracker-backend/internal/projects/service"
	taskhttp "github.com/tasktrack/tracker-backend/internal/tasks/http"
	taskrepo "github.com/tasktrack/tracker-backend/internal/tasks/repository"
	taskservice "github.com/tasktrack/tracker-backend/internal/tasks/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	DB             *sql.DB
	Redis          *redis.Client
	CacheTTL       time.Duration
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	StaticDir      string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	var dbCheck, cacheCheck httpapi.Check
	if dep.DB != nil {
		dbCheck = dep.DB.PingContext
	}
	if dep.Redis != nil {
		cacheCheck = func(ctx context.Context) error { return dep.Redis.Ping(ctx).Err() }
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dbCheck, cacheCheck)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))

	var projects projectrepo.Repository = projectrepo.NewProjectRepository(dep.DB)
	if dep.Redis != nil {
		projects = projectrepo.NewCachedRepository(projects, dep.Redis, dep.CacheTTL)
	}
	projecthttp.New(projectservice.NewProjectService(projects)).Register(api.Group("/projects"))

	tasks := taskrepo.NewTaskRepository(dep.DB)
	taskhttp.New(taskservice.NewTaskService(tasks)).Register(api.Group("/tasks"))

	r.NoRoute(staticFallback(dep.StaticDir))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// staticFallback serves the browser front end from dir for any GET or HEAD
// that matched no route. API paths and missing dirs get a JSON 404.
func staticFallback(dir string) gin.HandlerFunc {
	var files http.Handler
	if info, err := os.Stat(dir); dir != "" && err == nil && info.IsDir() {
		files = http.FileServer(http.Dir(dir))
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if files == nil || strings.HasPrefix(c.Request.URL.Path, "/api/") ||
			(method != http.MethodGet && method != http.MethodHead) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
