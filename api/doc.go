// Package api provides the HTTP API layer for Newsgrid.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers for pages, sessions and health
// - dto/: Response bodies and the mappers that build them from core types
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// 2. Request Validation
//
// Huma validates inputs based on struct tags:
//
//	type NewsPageInput struct {
//	    Page int `query:"page" minimum:"1" default:"1"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - CORS handling
// - Request logging with unique request IDs
// - Prometheus request metrics
// - Rate limiting per IP address
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 5,
//	    RateBurst: 10,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	newsHandler := handlers.NewNewsHandler(service, time.Local)
//	newsHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 503,
//	    "title": "Service Unavailable",
//	    "detail": "External service error"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
