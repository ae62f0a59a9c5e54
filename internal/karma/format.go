package karma

import (
	"fmt"
	"strings"
)

// FormatReply renders the final scores (in DeltaMap order) followed by any
// achievement lines into one outbound message. With no achievements the
// reply is just the score lines, no trailing newline.
func FormatReply(finals map[string]int64, deltas *DeltaMap, achievements []string) string {
	lines := make([]string, 0, deltas.Len()+len(achievements))
	for _, token := range deltas.Tokens() {
		lines = append(lines, fmt.Sprintf("%s now has %d karma.", token, finals[token]))
	}
	lines = append(lines, achievements...)
	return strings.Join(lines, "\n")
}
