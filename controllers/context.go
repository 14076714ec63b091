package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errNoUserInContext = errors.New("user id not found in context")

func currentUserID(c *gin.Context) (uint, error) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, errNoUserInContext
	}
	id, ok := v.(uint)
	if !ok {
		return 0, errors.New("invalid user id type in context")
	}
	return id, nil
}

func currentCompanyID(c *gin.Context) (uint, error) {
	v, exists := c.Get("company_id")
	if !exists {
		return 0, errors.New("company id not found in context")
	}
	id, ok := v.(uint)
	if !ok {
		return 0, errors.New("invalid company id type in context")
	}
	return id, nil
}

func currentRole(c *gin.Context) string {
	v, _ := c.Get("role")
	role, _ := v.(string)
	return role
}
