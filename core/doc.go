// Package core contains the translation engine. It has no HTTP framework
// dependencies; external services are reached through the interfaces package.
//
// Sub-packages:
//
//   - domain: requests, candidates, decisions, review items
//   - locale: the supported language table and country strictness tiers
//   - language: script detection and language acceptability checks
//   - title: search result title cleanup
//   - relevance: POI word overlap checks
//   - scoring: the additive candidate scoring rules
//   - search: the two-phase progressive search
//   - consensus: primary source reconciliation
//   - translation: concurrent source fan-out and the final decision
//   - review: the manual review queue service
//   - workers: the batch translation pool
//   - errors: validation, provider and not-found error types
//   - interfaces: cache, HTTP, logger, metrics, provider and storage contracts
//
// # Usage Example
//
//	deps := interfaces.Dependencies{Cache: cache, HTTPClient: client, Logger: logger}
//	searcher := search.NewSearchService(deps, serpClient, search.DefaultConfig())
//	svc := translation.NewTranslationService(deps, searcher, providers, consensus.NewReconciler(), translation.Config{})
//	result, err := svc.Translate(ctx, domain.TranslationRequest{POIName: "Tokyo Tower", LanguageCode: "JA-JP"})
package core
