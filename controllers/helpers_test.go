package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nsdrink-pos/config"
	"nsdrink-pos/models"
	"nsdrink-pos/routes"
	"nsdrink-pos/utils"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
	config.App = config.Config{JWTSecret: testSecret, JWTTTL: time.Hour, Location: time.UTC}

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func seedUser(t *testing.T, phone, password, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{Phone: phone, Name: "User " + phone, Password: string(hash), Role: role}
	require.NoError(t, config.DB.Create(&u).Error)
	return u
}

func tokenFor(t *testing.T, u models.User) string {
	t.Helper()
	tok, err := utils.GenerateToken(u, testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func teaAndCoffee() []map[string]any {
	return []map[string]any{
		{"name": "Tea", "price": 10000, "quantity": 2},
		{"name": "Coffee", "price": 15000, "quantity": 1},
	}
}

func createOrder(t *testing.T, r *gin.Engine, token string, table int) models.Order {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/orders", token, map[string]any{
		"orderNumber": 99,
		"tableNumber": table,
		"items":       teaAndCoffee(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Order](t, w)
}
