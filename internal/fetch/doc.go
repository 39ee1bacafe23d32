// Package fetch is the HTTP transport of kspgrab. It resolves site-relative
// references against the configured site URL, fetches raw text for JSON
// descriptors and parsed HTML documents for the extractors.
//
// Every returned document carries a <base href> pointing at the URL it came
// from, so links inside it resolve against the source page and not against
// the consumer. Concurrent GETs of the same URL share one request; the body
// is parsed separately for each caller so no tree is ever shared.
package fetch
