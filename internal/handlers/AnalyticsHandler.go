package handlers

import (
	"TradingJournal/internal/services/analytics"
	"net/http"

	"github.com/gin-gonic/gin"
)

// dashboard loads the (cached) dashboard for the request's filter. The
// handlers below each serve one view of it.
func (s *Server) dashboard(c *gin.Context) (*analytics.Dashboard, bool) {
	filter, err := parseFilter(c)
	if err != nil {
		s.badRequest(c, err.Error())
		return nil, false
	}
	months := parseLimit(c.Query("limit"), analytics.DefaultMonthLimit, 1, 120)

	dash, err := s.Journal.Dashboard(c.Request.Context(), filter, months)
	if err != nil {
		s.fail(c, "Dashboard", err)
		return nil, false
	}
	return dash, true
}

func (s *Server) getDashboard(c *gin.Context) {
	if dash, ok := s.dashboard(c); ok {
		c.JSON(http.StatusOK, dash)
	}
}

func (s *Server) getEquityCurve(c *gin.Context) {
	if dash, ok := s.dashboard(c); ok {
		c.JSON(http.StatusOK, dash.EquityCurve)
	}
}

func (s *Server) getProfitBySymbol(c *gin.Context) {
	if dash, ok := s.dashboard(c); ok {
		c.JSON(http.StatusOK, dash.ProfitBySymbol)
	}
}

func (s *Server) getProfitByDay(c *gin.Context) {
	if dash, ok := s.dashboard(c); ok {
		c.JSON(http.StatusOK, dash.ProfitByDay)
	}
}

func (s *Server) getMonthly(c *gin.Context) {
	if dash, ok := s.dashboard(c); ok {
		c.JSON(http.StatusOK, dash.Monthly)
	}
}

func (s *Server) getRiskMetrics(c *gin.Context) {
	if dash, ok := s.dashboard(c); ok {
		c.JSON(http.StatusOK, dash.RiskMetrics)
	}
}
