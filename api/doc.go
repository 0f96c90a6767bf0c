// Package api provides the HTTP layer for the POI translation engine.
// It uses Huma on a chi router for OpenAPI generation and request validation.
//
// # Layout
//
//   - server.go: Huma setup, CORS, recovery, logging and rate limiting
//   - handlers/: translation, consensus, review queue and health endpoints
//   - dto/: request and response bodies plus domain mappers
//   - middleware/: request IDs, access logs and per-IP token buckets
//
// # Endpoints
//
//	POST /translate                   one POI in one language
//	POST /translations/batch          many units on the worker pool
//	POST /reconcile                   consensus over caller-supplied source texts
//	POST /candidates/score            score search results with the rule breakdown
//	GET  /languages                   supported language table
//	GET  /review-queue                list review items (status, limit)
//	GET  /review-queue/{id}           fetch one review item
//	POST /review-queue/{id}/resolve   record the reviewer's text
//	GET  /health                      configured sources and dependency pings
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewTranslationHandler(translator, worker, reviews, logger, 50).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 body Huma produces. Validation errors map to 400,
// missing review items to 404, provider timeouts to 504, provider failures
// to 502 and a saturated batch pool to 503.
package api
