package handlers

import (
	"errors"

	"github.com/gfmartins/fintrack/internal/middleware"
	"github.com/gfmartins/fintrack/internal/services"
	"github.com/gfmartins/fintrack/pkg/response"
	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactionService *services.TransactionService
}

func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List returns the profile's transactions, newest first
// GET /api/transactions?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *TransactionHandler) List(c *gin.Context) {
	var req services.TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	transactions, err := h.transactionService.List(middleware.GetProfileID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, transactions)
}

// Create records a transaction
// POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req services.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	transaction, err := h.transactionService.Create(middleware.GetProfileID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, transaction)
}

// Update modifies a transaction
// PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid transaction id")
		return
	}

	var req services.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.transactionService.Update(middleware.GetProfileID(c), id, &req); err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}

// Delete removes a transaction
// DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.BadRequest(c, "invalid transaction id")
		return
	}

	if err := h.transactionService.Delete(middleware.GetProfileID(c), id); err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
