package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/batonhttp/baton/core/handler"
	"github.com/batonhttp/baton/core/logger"
)

// Logging returns a chain step that logs the incoming request with slog.
// It logs at the point it sits in the chain, so placing it after an auth
// step logs only authorized requests. A nil log disables the step.
func Logging[S any, T handler.TransientState[T]](log *slog.Logger) handler.HandlerFunc[S, T] {
	return func(
		ctx context.Context,
		req *http.Request,
		resp *handler.Response,
		params handler.Params,
		state *handler.State[S],
		ts T,
	) (*http.Request, *handler.Response, T, error) {
		if log != nil {
			id, _ := GetRequestID(req)
			log.InfoContext(ctx, "request received",
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.RequestID(id),
			)
		}
		return req, resp, ts, nil
	}
}
