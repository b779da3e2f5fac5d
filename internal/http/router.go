package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "catalogo/internal/config"
	h "catalogo/internal/http/handlers"
	"catalogo/internal/http/middleware"

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
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		produtos := api.Group("/produtos")
		produtos.POST("", h.CreateProduto)
		produtos.GET("", h.GetProdutos)
		produtos.GET("/:id", h.GetProdutoByID)
		produtos.PUT("/:id", h.UpdateProduto)
		produtos.DELETE("/:id", h.UnactivateProduto)

		relatorios := api.Group("/relatorios")
		relatorios.GET("/produtos", h.ExportProdutosPdf)
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	return cors.New(cfg)
}
