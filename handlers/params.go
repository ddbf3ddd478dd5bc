package handlers

import (
	"strconv"
	"strings"

	"localconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bindJSON decodes the body into dst, answering 400 on malformed input.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		getLogger(c).Debug("invalid request body", zap.Error(err))
		utils.RespondError(c, utils.BadRequest("Invalid request body"))
		return false
	}
	return true
}

// queryFloat parses an optional float query parameter.
func queryFloat(c *gin.Context, name string) (v float64, present bool, err error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, true, utils.BadRequest(name + " must be a number")
	}
	return v, true, nil
}

// queryInt parses an optional integer query parameter that must be >= min. Absent yields 0.
func queryInt(c *gin.Context, name string, min int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min {
		return 0, utils.BadRequest(name + " must be an integer >= " + strconv.Itoa(min))
	}
	return v, nil
}

// queryBool parses an optional boolean query parameter; nil when absent.
func queryBool(c *gin.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, utils.BadRequest(name + " must be true or false")
	}
	return &v, nil
}
