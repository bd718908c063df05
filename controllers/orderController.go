package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nsdrink-pos/dtos"
	"nsdrink-pos/services"
	"nsdrink-pos/utils"
)

var orderService = services.NewOrderService()

func actor(c *gin.Context) services.Actor {
	return services.Actor{
		Phone: utils.GetUserPhone(c),
		Role:  utils.GetUserRole(c),
		IP:    c.ClientIP(),
	}
}

// pathID parses the :id parameter. Anything but a positive integer answers
// 404 with msg.
func pathID(c *gin.Context, msg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": msg, "message": msg})
		return 0, false
	}
	return uint(id), true
}

func orderID(c *gin.Context) (uint, bool) {
	return pathID(c, "Order not found")
}

// POST /orders
func CreateOrder(c *gin.Context) {
	var input dtos.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	order, err := orderService.Create(input, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GET /orders?page&limit
func GetOrders(c *gin.Context) {
	var q dtos.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	page, err := orderService.List(q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /orders/last answers null when no order exists yet
func GetLastOrder(c *gin.Context) {
	order, err := orderService.Last()
	if err != nil {
		respondError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, order)
}

func GetOrderByID(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := orderService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PUT /orders/:id saves edits and, when status is "paid", settles the order
func UpdateOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var input dtos.UpdateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	order, err := orderService.Update(id, input, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// POST /orders/:id/reopen (paid -> pending)
func ReopenOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := orderService.Reopen(id, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
