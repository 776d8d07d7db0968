package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam parses a numeric id from a path parameter
func ParseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ParseUintQuery parses an optional numeric query parameter; absent or
// malformed values yield nil.
func ParseUintQuery(c *gin.Context, name string) *uint64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseLimitQuery parses an optional limit query parameter, falling back to
// the given default when absent or malformed.
func ParseLimitQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
