package handlers

import (
	"TradingJournal/internal/models"
	"TradingJournal/internal/services/journal"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type tradeResponse struct {
	ID         string    `json:"id"`
	AccountID  uint      `json:"account_id,omitempty"`
	Symbol     string    `json:"symbol"`
	Direction  string    `json:"direction"`
	EntryPrice float64   `json:"entry_price"`
	ExitPrice  float64   `json:"exit_price"`
	LotSize    float64   `json:"lot_size"`
	StopLoss   *float64  `json:"stop_loss"`
	TakeProfit *float64  `json:"take_profit"`
	TradeDate  string    `json:"trade_date"`
	TradeTime  string    `json:"trade_time"`
	Notes      string    `json:"notes,omitempty"`
	Profit     float64   `json:"profit"`
	Pips       float64   `json:"pips"`
	PipValue   float64   `json:"pip_value"`
	RRR        *float64  `json:"rrr"`
	IsWin      bool      `json:"is_win"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type tradesResponse struct {
	Rows []tradeResponse `json:"rows"`
}

func toTradeResponse(t *models.Trade) tradeResponse {
	return tradeResponse{
		ID:         t.ID,
		AccountID:  t.AccountID,
		Symbol:     t.Symbol,
		Direction:  t.Direction,
		EntryPrice: t.EntryPrice,
		ExitPrice:  t.ExitPrice,
		LotSize:    t.LotSize,
		StopLoss:   t.StopLoss,
		TakeProfit: t.TakeProfit,
		TradeDate:  t.TradeDate.Format(models.TradeDateLayout),
		TradeTime:  t.TradeTime,
		Notes:      t.Notes,
		Profit:     t.Profit,
		Pips:       t.Pips,
		PipValue:   t.PipValue,
		RRR:        t.RRR,
		IsWin:      t.IsWin,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (s *Server) createTrade(c *gin.Context) {
	var in journal.TradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, "invalid trade body: "+err.Error())
		return
	}

	trade, err := s.Journal.RecordTrade(c.Request.Context(), in)
	if err != nil {
		s.fail(c, "RecordTrade", err)
		return
	}
	c.JSON(http.StatusCreated, toTradeResponse(trade))
}

// listTrades returns the newest trades first.
func (s *Server) listTrades(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		s.badRequest(c, err.Error())
		return
	}
	limit := parseLimit(c.Query("limit"), 100, 1, 1000)

	trades, err := s.Journal.ListTrades(c.Request.Context(), filter)
	if err != nil {
		s.fail(c, "ListTrades", err)
		return
	}

	rows := make([]tradeResponse, 0, min(limit, len(trades)))
	for i := len(trades) - 1; i >= 0 && len(rows) < limit; i-- {
		rows = append(rows, toTradeResponse(&trades[i]))
	}
	c.JSON(http.StatusOK, tradesResponse{Rows: rows})
}

func (s *Server) getTrade(c *gin.Context) {
	trade, err := s.Journal.GetTrade(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, "GetTrade", err)
		return
	}
	c.JSON(http.StatusOK, toTradeResponse(trade))
}

func (s *Server) updateTrade(c *gin.Context) {
	var in journal.TradeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.badRequest(c, "invalid trade body: "+err.Error())
		return
	}

	trade, err := s.Journal.UpdateTrade(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		s.fail(c, "UpdateTrade", err)
		return
	}
	c.JSON(http.StatusOK, toTradeResponse(trade))
}

func (s *Server) deleteTrade(c *gin.Context) {
	if err := s.Journal.DeleteTrade(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, "DeleteTrade", err)
		return
	}
	c.Status(http.StatusNoContent)
}
