package api

import (
	"fmt"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	jwtrequest "github.com/dgrijalva/jwt-go/request"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// requestJWT generates a JWT for an operator. The intranet frontend is
// the only caller: it authenticates with the shared api key and passes
// the email of the signed-in user, which becomes the token subject.
// Every downstream operation reads the identity from the token instead
// of re-fetching it from session state mid-operation.
func (s *Server) requestJWT(c *gin.Context) {
	apiToken := c.GetHeader("Api-Token")
	if apiToken == "" || apiToken != viper.GetString("server.apikey.intranet") {
		abortWithEncoding(c, http.StatusForbidden, errorInvalidAPIKey)
		return
	}

	var req struct {
		Email string `json:"email" binding:"required,email"`
	}

	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	now := time.Now()
	exp := now.Add(time.Duration(viper.GetInt("jwt.expire")) * time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.StandardClaims{
		Subject:   req.Email,
		ExpiresAt: exp.Unix(),
		IssuedAt:  now.Unix(),
		Id:        uuid.New().String(),
		Audience:  "write",
	})

	tokenString, err := token.SignedString(s.jwtPrivateKey)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jwt_token":  tokenString,
		"expire_in":  exp.Unix() - now.Unix(),
		"token_type": "Bearer",
	})
}

func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &jwt.StandardClaims{}
		token, err := jwtrequest.ParseFromRequest(c.Request,
			jwtrequest.AuthorizationHeaderExtractor,
			func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
				}

				return &s.jwtPrivateKey.PublicKey, nil
			},
			jwtrequest.WithClaims(claims),
		)

		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidAuthorizationFormat, err)
			return
		}

		if !token.Valid {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken)
			return
		}

		c.Set("requester", claims.Subject)
		c.Next()
	}
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
