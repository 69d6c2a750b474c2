// Package flash manages short-lived, typed user-facing notification messages
// that survive exactly one request/response cycle.
//
// Messages are grouped into named containers ("default", "admin", ...), each
// owned by a Bag. A bag deduplicates messages by (type, text), resolves a
// render format per message, and drives the flash lifecycle: flashable
// messages are persisted to a Store on every add and reloaded - once - by
// the bag constructed for the next request, where they come back
// non-flashable and ready to render. This is the classic post-redirect
// display pattern: add during the POST handler, redirect, show during the
// GET handler.
//
// # Architecture
//
//   - Message: immutable-after-construction value, identity is (type, text)
//   - Collection: ordered, duplicate-free sequence of messages
//   - Bag: per-container state, format resolution, flash/load lifecycle
//   - Notifier: per-request facade routing shortcuts to a default container
//   - Store: single-slot-per-key persistence (memory and Redis included)
//
// # Basic Usage
//
//	store := flash.NewMemoryStore()
//
//	// POST handler: accumulate and flash
//	n := flash.NewNotifier(flash.DefaultConfig(), flash.WithNotifierStore(store))
//	n.Success(ctx, "Profile saved.")
//	n.Error(ctx, "Avatar upload failed.")
//
//	// next cycle, GET handler: a fresh notifier reloads and renders
//	store.Rotate() // session stores do this implicitly per request
//	n = flash.NewNotifier(flash.DefaultConfig(), flash.WithNotifierStore(store))
//	html := n.Show(ctx, "", "", "")
//
// # HTTP Integration
//
// Middleware wires the lifecycle into net/http: every request receives its
// own Notifier, scoped to the visitor by cookie:
//
//	r := chi.NewRouter()
//	r.Use(flash.Middleware(cfg, flash.WithNotifierStore(store)))
//	r.Post("/profile", func(w http.ResponseWriter, r *http.Request) {
//	    flash.MustFromContext(r.Context()).Success(r.Context(), "Saved.")
//	    http.Redirect(w, r, "/profile", http.StatusSeeOther)
//	})
//
// # Formats
//
// A message renders through a format string with :type and :message
// placeholders. Resolution order: explicit WithFormat on the add, then the
// per-type default, then the container's global default. Per-container
// defaults can be loaded from YAML via FormatsFromYAML, with the "__" key
// acting as catch-all for unconfigured containers.
//
// # Concurrency
//
// Bags and notifiers are request-scoped and not safe for concurrent use.
// Stores are shared across requests and are safe. The flash slot is a
// last-write-wins register per container and scope; the package adds no
// coordination beyond what the store guarantees.
package flash
