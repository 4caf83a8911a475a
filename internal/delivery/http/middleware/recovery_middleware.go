package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"hospital-management-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoveryMiddleware struct {
	log   *logrus.Logger
	debug bool
}

func NewRecoveryMiddleware(log *logrus.Logger, debug bool) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log, debug: debug}
}

// Handle turns a panic into a 500 response. The panic value is only
// returned to the client in debug mode.
func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				m.log.WithFields(logrus.Fields{
					"request_id": GetRequestID(r.Context()),
					"path":       r.URL.Path,
				}).Errorf("Panic recovered: %v\n%s", rec, debug.Stack())

				var details interface{}
				if m.debug {
					details = fmt.Sprint(rec)
				}
				response.InternalServerError(w, "Internal server error", details)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
