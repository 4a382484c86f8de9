package handlers

import (
	"TradingJournal/internal/services/economics"
	"TradingJournal/internal/services/journal"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type instrumentResponse struct {
	Symbol          string  `json:"symbol"`
	Known           bool    `json:"known"`
	PipDecimalPlace int     `json:"pip_decimal_place"`
	PipValue        float64 `json:"pip_value"`
	USDIsQuote      bool    `json:"usd_is_quote"`
	USDIsBase       bool    `json:"usd_is_base"`
}

// calculateProfit previews a trade without storing it.
func (s *Server) calculateProfit(c *gin.Context) {
	var in economics.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, "invalid calculator body: "+err.Error())
		return
	}

	res, err := s.Journal.Preview(c.Request.Context(), in)
	if err != nil {
		s.fail(c, "Preview", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) calculatePositionSize(c *gin.Context) {
	var in journal.PositionSizeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, "invalid position size body: "+err.Error())
		return
	}

	size, err := s.Journal.PositionSize(c.Request.Context(), in)
	if err != nil {
		s.fail(c, "PositionSize", err)
		return
	}
	c.JSON(http.StatusOK, size)
}

// getInstrument reports the pip configuration used for a symbol. Unknown
// symbols answer with the fallback and known=false.
func (s *Server) getInstrument(c *gin.Context) {
	calc := s.Journal.Calculator()
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))

	info, known := calc.Registry().Lookup(symbol)
	if !known {
		info = calc.Registry().Info(symbol)
	}
	c.JSON(http.StatusOK, instrumentResponse{
		Symbol:          symbol,
		Known:           known,
		PipDecimalPlace: info.PipDecimalPlace,
		PipValue:        calc.PipValue(symbol),
		USDIsQuote:      info.USDIsQuote,
		USDIsBase:       info.USDIsBase,
	})
}
