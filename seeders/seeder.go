package seeders

import (
	"log"

	"nsdrink-pos/config"
	"nsdrink-pos/models"
	"nsdrink-pos/services"
)

// Seed creates the default accounts and a starter drink menu. Existing rows
// are left alone, so it is safe to run on every start.
func Seed() {
	// ============= Seed Users =============
	users := []struct {
		Phone, Name, Password, Role string
	}{
		{"0900000000", "Admin", "admin123", models.RoleAdmin},
		{"0911111111", "Thu ngân", "staff123", models.RoleUser},
	}

	for _, u := range users {
		var existing models.User
		if err := config.DB.Where("phone = ?", u.Phone).First(&existing).Error; err == nil {
			continue
		}
		hash, err := services.HashPassword(u.Password)
		if err != nil {
			log.Printf("seed user %s: %v", u.Phone, err)
			continue
		}
		user := models.User{Phone: u.Phone, Name: u.Name, Password: hash, Role: u.Role}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Printf("seed user %s: %v", u.Phone, err)
		}
	}

	// ============= Seed Menu =============
	menu := []models.MenuItem{
		{Name: "Cà phê đen", Price: 15000},
		{Name: "Cà phê sữa", Price: 18000},
		{Name: "Bạc xỉu", Price: 20000},
		{Name: "Trà đào", Price: 25000},
		{Name: "Trà tắc", Price: 10000},
		{Name: "Trà sữa trân châu", Price: 25000},
		{Name: "Nước cam", Price: 22000},
		{Name: "Sinh tố bơ", Price: 30000},
		{Name: "Nước suối", Price: 8000},
		{Name: "Sữa chua đá", Price: 15000},
	}

	for _, item := range menu {
		config.DB.FirstOrCreate(&item, models.MenuItem{Name: item.Name})
	}

	log.Printf("seeding done: %d users, %d menu items checked", len(users), len(menu))
}
