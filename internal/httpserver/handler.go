package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.l.Infof(context.Background(), "HTTP middlewares registered: environment=%s mode=%s",
		srv.environment, srv.mode)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the assistant and OAuth routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	srv.gin.POST("/prompt", srv.handlePrompt)
	srv.gin.GET("/authenticate", srv.handleAuthenticate)
	srv.gin.GET("/callback", srv.handleCallbackGet)
	srv.gin.POST("/callback", srv.handleCallbackPost)

	if srv.filesDir != "" {
		srv.gin.Static("/downloads", srv.filesDir)
		srv.l.Infof(ctx, "Serving generated reports from %s at /downloads", srv.filesDir)
	}

	srv.l.Infof(ctx, "Assistant routes registered: POST /prompt, GET /authenticate, GET|POST /callback")
	return nil
}
