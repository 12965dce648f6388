package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	Register(ctx context.Context, credentials Credentials) (*User, error)
	Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type LoginResponse struct {
	Token string `json:"token"`
}

type RegisterResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type Handler struct {
	authService    authService
	metricsManager *metrics.Manager
}

func NewHandler(authService authService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		authService:    authService,
		metricsManager: metricsManager,
	}
}

func decodeCredentials(r *http.Request) (Credentials, error) {
	var credentials Credentials
	if r.Header.Get("Content-Type") == "application/json" {
		err := json.NewDecoder(r.Body).Decode(&credentials)
		return credentials, err
	}

	if err := r.ParseForm(); err != nil {
		return credentials, err
	}
	return Credentials{
		Username: r.Form.Get("username"),
		Password: r.Form.Get("password"),
	}, nil
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	credentials, err := decodeCredentials(r)
	if err != nil {
		log.Tracef("register, decode credentials: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	user, err := handler.authService.Register(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			http.Error(w, "username already exists", http.StatusConflict)
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("register user [%s]: %s", credentials.Username, err)
			http.Error(w, "register failed", http.StatusInternalServerError)
		}
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterRegistrations.Inc()
	}

	log.Debugf("new user registered: %d [%s]", user.ID, user.Username)
	pkg.WriteJSON(w, RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
	}, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	credentials, err := decodeCredentials(r)
	if err != nil {
		log.Tracef("login, decode credentials: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, credentials, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrWrongCredentials):
			log.Tracef("failed login attempt for user: %s", credentials.Username)
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		default:
			log.Errorf("login failed for [%s]: %s", credentials.Username, err)
			http.Error(w, "login failed", http.StatusInternalServerError)
		}
		return
	}

	log.Trace("new login success")
	pkg.WriteJSON(w, LoginResponse{Token: token}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := TokenFromRequest(r)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.authService.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "no can do", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
