package misc

import (
	"net/http"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/middleware"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Handler struct {
	versionInfo string
	authHandler *auth.Handler
}

func NewHandler(versionInfo string, authHandler *auth.Handler) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		authHandler: authHandler,
	}
}

// SetupRoutes mounts the health, version and account routes. The account routes are rate limited per client IP.
func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedPerMin int,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/myip", handler.handleGetMyIp).Methods("GET").Name("myip")

	accountSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	accountSubrouter.
		HandleFunc("/register", handler.authHandler.HandleRegister).
		Methods("POST", "OPTIONS").Name("register")
	accountSubrouter.
		HandleFunc("/login", handler.authHandler.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	accountSubrouter.
		HandleFunc("/logout", handler.authHandler.HandleLogout).
		Methods("GET", "POST", "OPTIONS").Name("logout")

	accountSubrouter.Use(middleware.RateLimit(rateLimiter, "account", allowedPerMin, metricsManager))
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	if handler.versionInfo == "" {
		pkg.WriteTextResponseOK(w, "unknown")
		return
	}
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleGetMyIp(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.getMyIp")
	defer span.End()

	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		log.Errorf("failed to get user IP address: %s", err)
		http.Error(w, "failed to get IP", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.String("user.ip", ip))
	pkg.WriteTextResponseOK(w, ip)
}
