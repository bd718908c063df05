package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nsdrink-pos/config"
	"nsdrink-pos/dtos"
	"nsdrink-pos/models"
)

// Get the whole menu, ordered by name
func GetMenu(c *gin.Context) {
	items := []models.MenuItem{}
	if err := config.DB.Order("name ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateMenuItem(c *gin.Context) {
	var input dtos.MenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	name := strings.TrimSpace(input.Name)

	var existing models.MenuItem
	if err := config.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A menu item with this name already exists", "message": "A menu item with this name already exists"})
		return
	}

	item := models.MenuItem{Name: name, Price: input.Price}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c, "Menu item not found")
	if !ok {
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found", "message": "Menu item not found"})
		return
	}

	var input dtos.MenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	name := strings.TrimSpace(input.Name)

	var existing models.MenuItem
	if err := config.DB.Where("name = ? AND id <> ?", name, item.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A menu item with this name already exists", "message": "A menu item with this name already exists"})
		return
	}

	item.Name = name
	item.Price = input.Price
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

func DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c, "Menu item not found")
	if !ok {
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found", "message": "Menu item not found"})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
