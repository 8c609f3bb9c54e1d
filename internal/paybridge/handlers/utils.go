package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"

	"go.uber.org/zap"

	"paybridge/pkg/logging"
)

type errorResponse struct {
	Error string `json:"error"`
}

func closeBody(ctx context.Context, body io.ReadCloser, logger *logging.ZapLogger) {
	err := body.Close()
	if err != nil {
		logger.ErrorCtx(ctx, "failed to close body", zap.Error(err))
	}
}

// decodeJSON deliberately tolerates unknown fields: both inbound payloads are
// third-party shapes that carry more than this service consumes.
func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	decoder := json.NewDecoder(r)
	err := decoder.Decode(&out)
	return out, err
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, responseItem any, logger *logging.ZapLogger) {
	res, err := json.Marshal(responseItem)
	if err != nil {
		logger.ErrorCtx(ctx, "error marshalling response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(res); err != nil {
		logger.ErrorCtx(ctx, "error writing response", zap.Error(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string, logger *logging.ZapLogger) {
	writeJSON(ctx, w, status, errorResponse{Error: message}, logger)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
