package api

import (
	"github.com/beka-birhanu/gridwalk/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	ginMode     string
	controllers []i.Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	GinMode     string // gin.ReleaseMode, gin.DebugMode or gin.TestMode
	Controllers []i.Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		ginMode:     config.GinMode,
		controllers: config.Controllers,
	}
}

// Handler builds the gin engine with every controller mounted under
// <baseURL>/v1.
func (r *Router) Handler() *gin.Engine {
	if r.ginMode != "" {
		gin.SetMode(r.ginMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	api := router.Group(r.baseURL)
	{
		publicRoutes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.Handler().Run(r.addr)
}
