package handlers

import (
	"TradingJournal/internal/services/journal"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	R       *gin.Engine
	Journal *journal.Service
	Logger  *zap.Logger
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewServer wires the router and middleware around the journal service.
func NewServer(svc *journal.Service, logger *zap.Logger, corsOrigin string) *Server {
	g := gin.New()

	g.Use(requestLogger(logger))
	g.Use(gin.Recovery())
	g.Use(cors(corsOrigin))

	s := &Server{R: g, Journal: svc, Logger: logger}

	g.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := g.Group("/api")
	api.POST("/trades", s.createTrade)
	api.GET("/trades", s.listTrades)
	api.GET("/trades/:id", s.getTrade)
	api.PUT("/trades/:id", s.updateTrade)
	api.DELETE("/trades/:id", s.deleteTrade)

	api.POST("/accounts", s.createAccount)
	api.GET("/accounts", s.listAccounts)
	api.GET("/accounts/:id", s.getAccount)
	api.PUT("/accounts/:id/balance", s.updateAccountBalance)

	api.POST("/calculator/profit", s.calculateProfit)
	api.POST("/calculator/position-size", s.calculatePositionSize)
	api.GET("/instruments/:symbol", s.getInstrument)

	analytics := api.Group("/analytics")
	analytics.GET("/dashboard", s.getDashboard)
	analytics.GET("/equity-curve", s.getEquityCurve)
	analytics.GET("/profit-by-symbol", s.getProfitBySymbol)
	analytics.GET("/profit-by-day", s.getProfitByDay)
	analytics.GET("/monthly", s.getMonthly)
	analytics.GET("/risk-metrics", s.getRiskMetrics)

	return s
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http_request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func cors(allowed string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		h := c.Writer.Header()
		h.Set("Vary", "Origin")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Max-Age", "86400")
		if allowed == "*" {
			h.Set("Access-Control-Allow-Origin", "*")
		} else if origin != "" && origin == allowed {
			h.Set("Access-Control-Allow-Origin", allowed)
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// --- Helpers ---

func (s *Server) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, apiError{Code: "bad_request", Message: msg})
}

func (s *Server) internalError(c *gin.Context, where string, err error) {
	s.Logger.Error("internal_error", zap.String("where", where), zap.Error(err))
	c.JSON(http.StatusInternalServerError, apiError{Code: "internal_server_error", Message: "internal server error"})
}

// fail maps journal errors onto status codes.
func (s *Server) fail(c *gin.Context, where string, err error) {
	switch {
	case errors.Is(err, journal.ErrInvalidInput):
		s.badRequest(c, err.Error())
	case errors.Is(err, journal.ErrUnusableLotSize):
		c.JSON(http.StatusUnprocessableEntity, apiError{Code: "unusable_lot_size", Message: err.Error()})
	case errors.Is(err, journal.ErrTradeNotFound), errors.Is(err, journal.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, apiError{Code: "not_found", Message: err.Error()})
	default:
		s.internalError(c, where, err)
	}
}
