// Package server exposes the operational HTTP surface: liveness and
// readiness probes, Prometheus metrics, and build info. The chat side of
// the bot lives in the Slack adapter, not here.
package server
