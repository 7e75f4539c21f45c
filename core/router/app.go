package router

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/batonhttp/baton/core/handler"
	"github.com/batonhttp/baton/core/logger"
	"github.com/batonhttp/baton/core/server"
)

// App ties the route table, the shared application state, and the serve
// entrypoints together. Register all routes before calling one of the Serve
// methods; the App is immutable while serving and safe for any number of
// concurrent requests.
type App[S any, T handler.TransientState[T]] struct {
	router *Router[S, T]
	state  *handler.State[S]
	log    *slog.Logger
}

// Option configures an App.
type Option[S any, T handler.TransientState[T]] func(*App[S, T])

// WithLogger sets the logger used for request and panic logging.
// The default logger discards everything.
func WithLogger[S any, T handler.TransientState[T]](log *slog.Logger) Option[S, T] {
	return func(a *App[S, T]) {
		if log != nil {
			a.log = log
		}
	}
}

// New creates an App with no shared application state; handlers receive a
// nil *handler.State.
func New[S any, T handler.TransientState[T]](opts ...Option[S, T]) *App[S, T] {
	a := &App[S, T]{
		router: NewRouter[S, T](),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewWithState creates an App whose handlers share initial through a
// concurrency-guarded handler.State handle for the life of the process.
func NewWithState[S any, T handler.TransientState[T]](initial S, opts ...Option[S, T]) *App[S, T] {
	a := New[S, T](opts...)
	a.state = handler.NewState(initial)
	return a
}

// State returns the shared state handle, or nil when none was configured.
func (a *App[S, T]) State() *handler.State[S] { return a.state }

// Get registers a chain for GET requests on pattern.
func (a *App[S, T]) Get(pattern string, chain *Chain[S, T]) error {
	return a.router.Register(http.MethodGet, pattern, chain)
}

// Post registers a chain for POST requests on pattern.
func (a *App[S, T]) Post(pattern string, chain *Chain[S, T]) error {
	return a.router.Register(http.MethodPost, pattern, chain)
}

// Put registers a chain for PUT requests on pattern.
func (a *App[S, T]) Put(pattern string, chain *Chain[S, T]) error {
	return a.router.Register(http.MethodPut, pattern, chain)
}

// Delete registers a chain for DELETE requests on pattern.
func (a *App[S, T]) Delete(pattern string, chain *Chain[S, T]) error {
	return a.router.Register(http.MethodDelete, pattern, chain)
}

// Patch registers a chain for PATCH requests on pattern.
func (a *App[S, T]) Patch(pattern string, chain *Chain[S, T]) error {
	return a.router.Register(http.MethodPatch, pattern, chain)
}

// Head registers a chain for HEAD requests on pattern.
func (a *App[S, T]) Head(pattern string, chain *Chain[S, T]) error {
	return a.router.Register(http.MethodHead, pattern, chain)
}

// Options registers a chain for OPTIONS requests on pattern.
func (a *App[S, T]) Options(pattern string, chain *Chain[S, T]) error {
	return a.router.Register(http.MethodOptions, pattern, chain)
}

// Connect registers a chain for CONNECT requests on pattern.
func (a *App[S, T]) Connect(pattern string, chain *Chain[S, T]) error {
	return a.router.Register(http.MethodConnect, pattern, chain)
}

// Trace registers a chain for TRACE requests on pattern.
func (a *App[S, T]) Trace(pattern string, chain *Chain[S, T]) error {
	return a.router.Register(http.MethodTrace, pattern, chain)
}

// Handle registers a chain for an arbitrary method on pattern.
func (a *App[S, T]) Handle(method, pattern string, chain *Chain[S, T]) error {
	return a.router.Register(method, pattern, chain)
}

// Routes returns all registered routes in registration order.
func (a *App[S, T]) Routes() []RouteInfo { return a.router.Routes() }

// ServeHTTP implements http.Handler; it is the transport-facing dispatch
// path. Per-request failures never escape a single request: every outcome
// resolves to a response and the server keeps serving.
func (a *App[S, T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	resp := a.dispatch(r)

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	if err := resp.Write(w); err != nil {
		a.log.ErrorContext(r.Context(), "write response",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
		return
	}

	a.log.InfoContext(r.Context(), "request",
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Status(status),
		logger.Elapsed(start),
	)
}

// dispatch resolves and executes the chain for r, then maps the terminal
// outcome to a concrete response. Panics inside a chain are recovered here
// and surface as 500 without taking the server down.
func (a *App[S, T]) dispatch(r *http.Request) (resp *handler.Response) {
	defer func() {
		if v := recover(); v != nil {
			perr := &panicError{value: v, stack: debug.Stack()}
			a.log.Error("panic in handler chain",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Error(perr),
				slog.String("stack", string(perr.Stack())),
			)
			resp = handler.Text(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
	}()

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	chain, params, ok := a.router.Resolve(r.Method, path)
	if !ok {
		if allowed := a.router.Allowed(path); len(allowed) > 0 {
			resp := handler.Text(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
			resp.SetHeader("Allow", strings.Join(allowed, ", "))
			return resp
		}
		return handler.Text(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}

	result, err := chain.Execute(r.Context(), r, params, a.state)
	return resolveOutcome(result, err)
}

// resolveOutcome converts a chain's terminal outcome into the response the
// transport writes. A handler.Error surfaces with its status (empty message,
// empty body); any other error surfaces as 500 with the error text as a
// plain-text body; completing without a response is a misconfiguration and
// also surfaces as 500.
func resolveOutcome(resp *handler.Response, err error) *handler.Response {
	if err != nil {
		var herr handler.Error
		if errors.As(err, &herr) {
			if herr.Message == "" {
				return handler.StatusResponse(herr.Status)
			}
			return handler.Text(herr.Status, herr.Message)
		}
		return handler.Text(http.StatusInternalServerError, err.Error())
	}
	if resp == nil {
		return handler.Text(http.StatusInternalServerError, ErrNoResponse.Error())
	}
	return resp
}

// Serve starts an HTTP server on addr and blocks until ctx is canceled or
// the listener fails. Bind failures (e.g. address in use) propagate out;
// cancellation triggers a graceful shutdown and returns ctx.Err().
func (a *App[S, T]) Serve(ctx context.Context, addr string) error {
	srv := server.New(addr, server.WithLogger(a.log))
	return srv.Start(ctx, a)
}

// ServeTLS starts an HTTPS server on addr with the given TLS configuration.
func (a *App[S, T]) ServeTLS(ctx context.Context, addr string, cfg *tls.Config) error {
	srv := server.New(addr, server.WithLogger(a.log), server.WithTLS(cfg))
	return srv.Start(ctx, a)
}

// ServeUnix starts an HTTP server listening on a unix socket at socketPath.
func (a *App[S, T]) ServeUnix(ctx context.Context, socketPath string) error {
	srv := server.New(socketPath, server.WithLogger(a.log))
	return srv.StartUnix(ctx, a)
}
