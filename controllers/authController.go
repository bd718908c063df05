package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nsdrink-pos/dtos"
	"nsdrink-pos/services"
)

func Login(c *gin.Context) {
	var input dtos.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone and password are required", "message": "Phone and password are required"})
		return
	}

	res, err := services.NewAuthService().Login(input)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
