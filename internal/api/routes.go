package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/parlolabs/parlo/internal/auth"
	"github.com/parlolabs/parlo/internal/skill"
)

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, router *skill.Router, verifier *auth.Verifier, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "parlo-server",
		})
	})

	// Prometheus metrics
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Skill webhook, one POST per conversation turn
	v1 := e.Group("/v1")
	v1.POST("/skill", func(c echo.Context) error {
		return handleSkillRequest(c, router, logger)
	}, verifier.Middleware())
}

func handleSkillRequest(c echo.Context, router *skill.Router, logger *zap.Logger) error {
	var req skill.RequestEnvelope
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind skill request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":   "invalid_request",
			"message": "Invalid request format",
		})
	}

	logger.Info("Dispatching turn",
		zap.String("type", req.Request.Type),
		zap.String("intent", req.Request.Intent.Name),
		zap.String("sessionID", req.Session.SessionID))

	// Dispatch never fails: error turns come back as fixed spoken messages.
	resp := router.Dispatch(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, resp)
}
