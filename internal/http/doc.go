// Package http provides the HTTP client used to fetch the band dataset.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Rejecting non-200 responses
//
// # Basic Usage
//
//	client := http.NewClient(http.WithTimeout(10 * time.Second))
//
//	data, err := client.Get(ctx, "https://example.com/kaustinen_2025_bands.json")
//	if err != nil {
//	    return err
//	}
//
// No retries are performed; a failed request is reported to the caller.
package http
