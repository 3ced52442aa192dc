package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"server/internal/config"
	handlers "server/internal/handlers/quran"
	"server/internal/routing"
)

// Bismillah
func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.LlmApiKey == "" {
		logger.Fatal("LLM_API_KEY env var not set")
	}

	e := echo.New()
	e.HideBanner = true // why is it even false by default
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendUrl},
		AllowMethods:     []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	routing.InitQuranRoutes(e, handlers.NewHandler(cfg, logger))

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
