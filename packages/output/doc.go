// Package output renders responses for the terminal.
//
// The renderer colorizes status lines by severity, pretty-prints JSON
// bodies, and narrows output through selectors: numeric selectors
// slice the body by line, anything else extracts a JSON key path.
package output
