// Package ports defines the driven-side interfaces of the sequence engine
// and the shared contract tests their implementations must pass.
package ports
