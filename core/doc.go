// Package core contains the business logic for Newsgrid.
// It is designed to be framework-agnostic and can be used independently
// of any web framework, terminal UI or infrastructure concern.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Article, BranchResult, PageResult, Status)
// - news: Query composition, the two-branch page fetch and the paging controller
// - card: Presentation model of a single article card
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger, metrics)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Paging state is a value with pure transition functions
//
// # Usage Example
//
//	import (
//	    "newsgrid/core/interfaces"
//	    "newsgrid/core/news"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := news.NewService(deps, news.Options{APIKey: key})
//	controller := news.NewController(service, deps)
//	defer controller.Close()
//
//	updates, unsubscribe := controller.Subscribe()
//	defer unsubscribe()
//	controller.Start(ctx)
//
//	for state := range updates {
//	    if !state.Loading {
//	        render(state.Articles)
//	    }
//	}
package core
