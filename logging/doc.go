// Package logging builds the zap logger used by the resolver tooling, with
// optional lumberjack rotation for file outputs.
package logging
