package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a panicking handler into a 500. The route name and the
// authenticated user, when known, are logged with the stack.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				fields := log.Fields{
					"method": req.Method,
					"path":   req.URL.Path,
					"route":  recoveryRouteName(req),
				}
				if userID, ok := auth.UserIDFromContext(req.Context()); ok {
					fields["user_id"] = userID
				}
				log.WithFields(fields).Errorf("http: panic serving request: %v\n%s", r, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(respWriter, "internal error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(respWriter, req)
		})
	}
}

func recoveryRouteName(req *http.Request) string {
	route := mux.CurrentRoute(req)
	if route == nil || route.GetName() == "" {
		return "unknown"
	}
	return route.GetName()
}
