package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxPhone = "phone"
	CtxName  = "name"
	CtxRole  = "role"
)

func GetUserRole(c *gin.Context) string {
	return getString(c, CtxRole)
}

func GetUserPhone(c *gin.Context) string {
	return getString(c, CtxPhone)
}

func getString(c *gin.Context, key string) string {
	v, ok := c.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func toJSONString(v interface{}) *string {
	if v == nil {
		return nil
	}
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	str := string(bytes)
	return &str
}

func getStringValue(ptr *string) string {
	if ptr != nil {
		return *ptr
	}
	return ""
}
