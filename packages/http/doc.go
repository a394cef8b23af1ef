// Package http executes resolved requests.
//
// It wraps the standard library's http package with the behavior the
// CLI needs: redirects surfaced instead of followed, a 120 second
// deadline on buffered requests, an undeadlined streaming mode, and a
// multipart mode that sniffs the payload's content type from its magic
// bytes.
package http
