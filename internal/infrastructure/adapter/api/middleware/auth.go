package middleware

import (
	"strings"

	"github.com/amirhossein-jamali/currency-detector/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/currency-detector/internal/domain/error"
	"github.com/amirhossein-jamali/currency-detector/internal/domain/port/usecase"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// Authenticate resolves the bearer token to a user and stores it on the context
func Authenticate(auth usecase.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			AbortWithError(c, domainerr.ErrUnauthenticated)
			return
		}

		user, err := auth.Verify(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil outside protected routes
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
