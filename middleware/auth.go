package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/constants"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/models"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/utils"
)

const ClaimsKey = "orgClaims"

// AuthRequired validates the bearer token and, for organization principals,
// checks the organization still exists and is verified. Claims land in the
// context under ClaimsKey.
func AuthRequired(db *gorm.DB, tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token required"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token required"})
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid token"})
			return
		}

		if claims.Role == string(constants.RoleOrgAdmin) {
			var org models.Organization
			err := db.First(&org, "id = ?", claims.OrgID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error."})
				return
			}
			if !org.IsVerified {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func RequireRole(allowedRoles ...constants.RoleEnum) gin.HandlerFunc {
	roleSet := make(map[string]struct{})
	for _, r := range allowedRoles {
		roleSet[string(r)] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsVal, exists := c.Get(ClaimsKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token required"})
			return
		}

		claims, ok := claimsVal.(*utils.JWTClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token required"})
			return
		}

		if _, allowed := roleSet[claims.Role]; !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
			return
		}

		c.Next()
	}
}
