// Package router implements the request dispatch engine: route-template
// parsing and matching, the per-method route table with deterministic
// specificity ordering, the handler chain engine, and the App that ties them
// to a listening server.
//
// Routes are registered before serving begins and are immutable afterwards:
//
//	app := router.NewWithState[Counter, handler.NoState](Counter{})
//	if err := app.Get("/auth/:name", router.NewChain(authorize, greet)); err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Serve(ctx, ":8080"); err != nil {
//		log.Fatal(err)
//	}
//
// When several registered patterns match one path, the most specific entry
// wins: more literal segments before the first named or wildcard segment
// beat fewer, a pattern without a wildcard beats one with, and registration
// order breaks remaining ties. Given /wildcard/*, /auth/:name and /:name, a
// request to /auth/erik resolves to /auth/:name.
package router
