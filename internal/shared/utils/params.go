package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/doramashorts/backend/internal/shared/constants"
	"github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/id"
)

// ParseSIDParam reads a prefixed ID from a path parameter. A malformed ID
// cannot name an existing record and is reported as not found.
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewNotFoundError(entityName + " not found")
	}

	return sid, nil
}

// GetUserID returns the authenticated caller set by the auth middleware.
func GetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok && userID != 0
}
