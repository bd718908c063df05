package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nsdrink-pos/ledger"
	"nsdrink-pos/services"
)

// respondError maps service and ledger errors onto status codes. Mutation
// failures carry the reason in both "error" and "message".
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrReopenFirst),
		errors.Is(err, ledger.ErrAlreadyPaid),
		errors.Is(err, ledger.ErrNotPaid):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, ledger.ErrEmptyCart),
		errors.Is(err, ledger.ErrInvalidDiscount),
		errors.Is(err, ledger.ErrInvalidPaymentMethod),
		errors.Is(err, ledger.ErrInvalidTable),
		errors.Is(err, ledger.ErrNegativeQuantity),
		errors.Is(err, ledger.ErrNegativePrice),
		errors.Is(err, ledger.ErrEmptyName):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error(), "message": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "message": err.Error()})
}
