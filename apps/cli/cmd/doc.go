// Package cmd implements the coman CLI commands using Cobra.
//
// Available commands:
//   - col: Create or update a collection
//   - endpoint: Create or update an endpoint in a collection
//   - list: Display stored collections and endpoints
//   - update: Modify a collection or endpoint in place
//   - delete: Remove a collection or endpoint
//   - copy: Duplicate a collection or endpoint
//   - run: Execute a stored endpoint
//   - req: Execute an ad-hoc request
//   - url: Print the ad-hoc command equivalent to a stored endpoint
//   - test: Smoke-test every endpoint of a collection
//   - history: Show recently executed requests
//   - validate: Check the data file against its schema
//   - export / import: Dump and load collections as JSON or YAML
//   - version: Show coman version information
//
// Collections and endpoints persist in a single JSON data file,
// $COMAN_JSON or ~/coman.json by default.
package cmd
