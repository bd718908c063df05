package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nsdrink-pos/config"
	"nsdrink-pos/dtos"
	"nsdrink-pos/models"
	"nsdrink-pos/services"
)

func GetUsers(c *gin.Context) {
	users := []models.User{}
	if err := config.DB.Order("id ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func CreateUser(c *gin.Context) {
	var input dtos.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	phone := strings.TrimSpace(input.Phone)

	var existing models.User
	if err := config.DB.Where("phone = ?", phone).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Phone number already registered", "message": "Phone number already registered"})
		return
	}

	hash, err := services.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	role := input.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{Phone: phone, Name: strings.TrimSpace(input.Name), Password: hash, Role: role}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "User not found")
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "message": "User not found"})
		return
	}

	var input dtos.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}

	user.Name = strings.TrimSpace(input.Name)
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Password != "" {
		hash, err := services.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		user.Password = hash
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Admin accounts cannot be deleted
func DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "User not found")
	if !ok {
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "message": "User not found"})
		return
	}
	if user.IsAdmin() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin accounts cannot be deleted", "message": "Admin accounts cannot be deleted"})
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
