package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nsdrink-pos/dtos"
)

// GET /orders/completed?startDate&endDate&paymentMethod
func GetCompletedOrders(c *gin.Context) {
	var q dtos.CompletedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	res, err := orderService.Completed(q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /orders/discount-notes?page&limit
func GetDiscountNoteOrders(c *gin.Context) {
	var q dtos.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	page, err := orderService.DiscountNotes(q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /orders/dashboard: trailing week, today's split and best sellers
func GetDashboard(c *gin.Context) {
	res, err := orderService.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
