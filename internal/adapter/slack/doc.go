// Package slack connects the karma pipeline to Slack over Socket Mode.
// It is the only package that knows about the chat transport: message
// events in, plain-text replies out, and a roster snapshot fetched once
// per triggering event for mention resolution.
package slack
