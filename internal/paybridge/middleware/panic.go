package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"paybridge/pkg/logging"
)

type PanicRecover struct {
	logger *logging.ZapLogger
}

func NewPanicRecover(logger *logging.ZapLogger) *PanicRecover {
	return &PanicRecover{
		logger: logger,
	}
}

// CreateHandler turns a panic into a 500 with a generic body; the recovered
// value stays in the log only.
func (pr *PanicRecover) CreateHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rcv := recover(); rcv != nil {
				pr.logger.ErrorCtx(r.Context(), "panic in HTTP handler", zap.Any("recover", rcv))
				w.Header().Add("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal error"}`))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
