package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ihvn/medix/config"
	"github.com/ihvn/medix/util"
)

// AntiForgeryHeader carries the signed token on mutating requests.
const AntiForgeryHeader = "X-Antiforgery-Token"

const antiForgeryTTL = 30 * time.Minute

// IssueAntiForgeryToken mints a token for the form endpoints and exposes it
// in the response header so the client can send it back on submit.
func IssueAntiForgeryToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _, err := util.NewAntiForgeryToken(antiForgeryTTL)
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{
				Msg: "Failed to issue anti-forgery token",
				Err: err,
			})
			c.Abort()
			return
		}
		c.Header(AntiForgeryHeader, token)
		c.Next()
	}
}

// AntiForgery rejects mutating requests that do not carry a valid token.
// When Redis is available each token is accepted only once; without Redis the
// signature and expiry checks still apply.
func AntiForgery() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(AntiForgeryHeader)
		if tokenString == "" {
			rejectForgery(c, "missing anti-forgery token")
			return
		}

		id, err := util.ParseAntiForgeryToken(tokenString)
		if err != nil {
			rejectForgery(c, fmt.Sprintf("invalid anti-forgery token: %v", err))
			return
		}

		if used, err := markTokenUsed(id); err == nil && used {
			rejectForgery(c, "anti-forgery token already used")
			return
		}

		c.Next()
	}
}

func rejectForgery(c *gin.Context, reason string) {
	util.LogForgedRequest(c.ClientIP(), c.Request.UserAgent(), c.Request.URL.Path, reason)
	util.CallUserNotAuthorized(c, util.APIErrorParams{
		Msg: "Request rejected",
		Err: fmt.Errorf("%s", reason),
	})
	c.Abort()
}

// markTokenUsed records the token id in Redis for single-use enforcement.
// Returns used=true when the id was already recorded.
func markTokenUsed(id string) (bool, error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return false, fmt.Errorf("redis not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := fmt.Sprintf("antiforgery:%s", id)
	set, err := rdb.SetNX(ctx, key, 1, antiForgeryTTL).Result()
	if err != nil {
		return false, err
	}
	return !set, nil
}
