package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "cbexplorer/internal/config"
	h "cbexplorer/internal/http/handlers"
	"cbexplorer/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		api.GET("/search", h.GlobalSearch)

		organizations := api.Group("/organizations")
		organizations.GET("", h.GetOrganizations)
		organizations.POST("/search", h.SearchOrganizations)
		organizations.GET("/:id", h.GetOrganizationByID)
		organizations.GET("/by-permalink/:permalink", h.GetOrganizationByPermalink)

		people := api.Group("/people")
		people.GET("", h.GetPeople)
		people.POST("/search", h.SearchPeople)
		people.GET("/:id", h.GetPersonByID)
		people.GET("/by-permalink/:permalink", h.GetPersonByPermalink)

		fundingRounds := api.Group("/funding-rounds")
		fundingRounds.GET("", h.GetFundingRounds)
		fundingRounds.POST("/search", h.SearchFundingRounds)
		fundingRounds.GET("/:id", h.GetFundingRoundByID)
		fundingRounds.GET("/by-permalink/:permalink", h.GetFundingRoundByPermalink)

		investments := api.Group("/investments")
		investments.GET("", h.GetInvestments)
		investments.POST("/search", h.SearchInvestments)
		investments.GET("/:id", h.GetInvestmentByID)

		acquisitions := api.Group("/acquisitions")
		acquisitions.GET("", h.GetAcquisitions)
		acquisitions.POST("/search", h.SearchAcquisitions)
		acquisitions.GET("/:id", h.GetAcquisitionByID)

		events := api.Group("/events")
		events.GET("", h.GetEvents)
		events.POST("/search", h.SearchEvents)
		events.GET("/:id", h.GetEventByID)
		events.GET("/by-permalink/:permalink", h.GetEventByPermalink)
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: env.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Accept", "Origin", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	return cors.New(cfg)
}
