package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=users_repo_mocks_test.go -package=auth

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "liftlog-session||"
	tokensSetKey     = "liftlog-sessions"
	tokenLength      = 35

	sessionFieldUserID    = "user_id"
	sessionFieldCreatedAt = "created_at"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrWrongCredentials   = errors.New("wrong credentials")
	ErrInvalidCredentials = errors.New("username and password must not be empty")
)

type usersRepo interface {
	Add(ctx context.Context, username, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Service struct {
	usersRepo   usersRepo
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	// bcrypt with the default cost is slow, tests inject a cheaper one
	HashPasswordFunc func(password string) (string, error)
}

func NewAuthService(
	usersRepo usersRepo,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		usersRepo:        usersRepo,
		ttl:              ttl,
		redisClient:      redisClient,
		RandStringFunc:   pkg.GenerateRandomString,
		HashPasswordFunc: pkg.HashPassword,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Register creates a new user. A taken username results in ErrUsernameTaken.
func (as *Service) Register(ctx context.Context, credentials Credentials) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username := strings.TrimSpace(credentials.Username)
	if username == "" || credentials.Password == "" {
		return nil, ErrInvalidCredentials
	}

	passwordHash, err := as.HashPasswordFunc(credentials.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return as.usersRepo.Add(ctx, username, passwordHash)
}

// Login checks the credentials and opens a new session, returning its token.
func (as *Service) Login(ctx context.Context, credentials Credentials, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username := strings.TrimSpace(credentials.Username)
	if username == "" || credentials.Password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := as.usersRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrWrongCredentials
		}
		return "", err
	}

	if !pkg.CheckPasswordHash(credentials.Password, user.PasswordHash) {
		return "", ErrWrongCredentials
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	key := sessionKey(token)
	if err := as.redisClient.HSet(
		ctx, key,
		sessionFieldUserID, user.ID,
		sessionFieldCreatedAt, createdAt.Unix(),
	).Err(); err != nil {
		return "", err
	}

	// redis drops the session on its own, the scan below cleans the tokens set
	if err := as.redisClient.Expire(ctx, key, as.ttl).Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes the session. It returns false if the session did not exist.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	deleted, err := as.redisClient.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := as.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		createdAtUnixStr, err := as.redisClient.HGet(ctx, sessionKey(token), sessionFieldCreatedAt).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// session expired in redis already
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
		if err != nil {
			log.Errorf("auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(time.Unix(createdAtUnix, 0)) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}

		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token %s: %s", token, err)
			continue
		}
	}

	log.Debugf("auth service, scan and clean done, removed %d sessions", len(toRemove))
}
