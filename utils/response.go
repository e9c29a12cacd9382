package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"success": false, "error": gin.H{"code": code, "message": message}})
}

func JSONErrorDetails(c *gin.Context, status int, code, message, details string) {
	c.JSON(status, gin.H{"success": false, "error": gin.H{"code": code, "message": message, "details": details}})
}
