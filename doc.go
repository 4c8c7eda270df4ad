// Package relay is an exact-match HTTP router with continuation-passing
// middleware chains. A route maps a method and a literal path to an ordered
// chain of handlers; each handler receives the request Context and a Next
// callback that runs the remainder of the chain. Not calling Next halts the
// chain, which makes guard middleware a one-liner.
//
// Routers are configured with fluent per-verb calls and dispatched through
// the closure returned by Routes:
//
//	r := relay.New(relay.WithPrefix("/api"))
//	r.Get("/users", authorize, listUsers)
//	r.Post("/users", authorize, createUser)
//	r.Redirect("/old-users", "/api/users")
//
// Route keys are built by literal concatenation, METHOD + "+" + prefix +
// path, with no decoding and no trailing-slash normalization. The first
// registration for a key wins; later registrations under the same key are
// silently ignored.
//
// Handlers come in two shapes, normalized at registration time: the
// canonical func(Context, Next), and the terminal func(Context), which
// always falls through. Methods on handler types are adapted with the
// generic Bind helpers.
//
// A dispatcher only acts while the Context still reports the unhandled
// sentinel status, so Routers compose: the dispatcher of one Router is
// itself a valid handler for another, and several Routers can be stacked as
// stages of an App pipeline:
//
//	app := relay.NewApp().
//		Use(relay.Logger(slog.Default())).
//		Use(r.Routes())
//	err := app.ListenAndServe(ctx, ":8080")
package relay
