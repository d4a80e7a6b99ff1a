package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	// CORS Middleware
	trusted := make(map[string]bool)
	for _, origin := range app.Config.GetCORSOrigins() {
		trusted[origin] = true
	}
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if trusted[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/sessions", app.Handler.StartSession)
		v1.GET("/sessions/:id", app.Handler.GetSession)
		v1.POST("/sessions/:id/answers", app.Handler.SubmitAnswer)
		v1.POST("/sessions/:id/end", app.Handler.EndSession)

		v1.GET("/usage/stats", app.Handler.UsageStats)
	}

	return r
}
