package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// CurrentUser resolves a session token to the user id it was issued for.
// ok is false if the session is missing or older than the TTL.
func (lc *LoginChecker) CurrentUser(ctx context.Context, token string) (userID int, ok bool, err error) {
	session, err := lc.redisClient.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return 0, false, err
	}
	if len(session) == 0 {
		return 0, false, nil
	}

	createdAtUnix, err := strconv.ParseInt(session[sessionFieldCreatedAt], 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse session created at: %w", err)
	}
	if time.Since(time.Unix(createdAtUnix, 0)) > lc.ttl {
		return 0, false, nil
	}

	userID, err = strconv.Atoi(session[sessionFieldUserID])
	if err != nil {
		return 0, false, fmt.Errorf("parse session user id: %w", err)
	}

	return userID, true, nil
}
