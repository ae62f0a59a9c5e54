// Package karma implements the utterance-to-reply pipeline: marker parsing,
// mention resolution, delta aggregation, score commits, achievement lookup,
// and reply formatting.
package karma
