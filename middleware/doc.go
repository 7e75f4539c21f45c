// Package middleware provides reusable chain steps. In this framework
// middleware is not a separate type: each helper here returns an ordinary
// handler.HandlerFunc that passes the request, response, and transient state
// through, so it can be placed anywhere in a chain.
//
//	chain := router.NewChain(
//		middleware.RequestID[AppState, handler.NoState](),
//		middleware.Logging[AppState, handler.NoState](log),
//		showProfile,
//		middleware.EchoRequestID[AppState, handler.NoState](),
//	)
package middleware
