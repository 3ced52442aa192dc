package routing

import (
	"github.com/labstack/echo/v4"

	handlers "server/internal/handlers/quran"
)

func InitQuranRoutes(e *echo.Echo, handler *handlers.Handler) {
	quran := e.Group("/api/quran")
	quran.POST("/extract-emotion", handler.PostExtractEmotion)
	quran.POST("/verses", handler.PostVerses)
}
