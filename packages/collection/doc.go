// Package collection defines the data model for API collections:
// named groups of endpoints sharing a base URL and default headers.
package collection
