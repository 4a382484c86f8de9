package handlers

import (
	"TradingJournal/internal/services/journal"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type accountRequest struct {
	Name     string  `json:"name"`
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
}

type balanceRequest struct {
	Balance *float64 `json:"balance"`
}

type accountResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	Balance   float64   `json:"balance"`
	Equity    float64   `json:"equity"`
	CreatedAt time.Time `json:"created_at"`
}

func toAccountResponse(a journal.AccountSummary) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Currency:  a.Currency,
		Balance:   a.Balance,
		Equity:    a.Equity,
		CreatedAt: a.CreatedAt,
	}
}

func (s *Server) createAccount(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "invalid account body: "+err.Error())
		return
	}

	account, err := s.Journal.CreateAccount(c.Request.Context(), req.Name, req.Currency, req.Balance)
	if err != nil {
		s.fail(c, "CreateAccount", err)
		return
	}
	c.JSON(http.StatusCreated, toAccountResponse(journal.AccountSummary{Account: *account, Equity: account.Balance}))
}

func (s *Server) listAccounts(c *gin.Context) {
	accounts, err := s.Journal.ListAccounts(c.Request.Context())
	if err != nil {
		s.fail(c, "ListAccounts", err)
		return
	}
	rows := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, toAccountResponse(a))
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) getAccount(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.badRequest(c, err.Error())
		return
	}
	account, err := s.Journal.GetAccount(c.Request.Context(), id)
	if err != nil {
		s.fail(c, "GetAccount", err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(*account))
}

func (s *Server) updateAccountBalance(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.badRequest(c, err.Error())
		return
	}
	var req balanceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Balance == nil {
		s.badRequest(c, "balance is required")
		return
	}

	if err := s.Journal.UpdateAccountBalance(c.Request.Context(), id, *req.Balance); err != nil {
		s.fail(c, "UpdateAccountBalance", err)
		return
	}
	account, err := s.Journal.GetAccount(c.Request.Context(), id)
	if err != nil {
		s.fail(c, "GetAccount", err)
		return
	}
	c.JSON(http.StatusOK, toAccountResponse(*account))
}
