// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, logging, metrics and session storage.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with a redacting logging transport
// - logger/structured: logrus-backed structured logger
// - metrics/collector: Prometheus collectors for fetch cycles and API requests
// - session/memory: go-cache backed registry of browsing sessions
//
// # HTTP Client
//
// The client makes a single attempt per request. Credentials travel in
// headers and are never written to the log:
//
//	client := standard.NewStandardHTTPClient(0, logger)
//	header := http.Header{"X-Api-Key": []string{key}}
//	resp, err := client.Get(ctx, "https://newsapi.org/v2/everything?q=india", header)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.New(structured.Options{Level: "info", Format: structured.FormatJSON})
//	logger.Info("Fetch cycle completed", map[string]interface{}{
//	    "page":     2,
//	    "articles": 9,
//	})
//
// # Sessions
//
// Idle sessions expire after their TTL and their controllers are closed:
//
//	store := memory.NewStore(30*time.Minute, time.Minute, memory.WithLogger(logger))
//	id := store.Add(controller)
//	defer store.Close()
package infrastructure
