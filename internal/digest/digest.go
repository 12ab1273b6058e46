// Package digest builds the run summary text and delivers it to an
// optional webhook.
package digest

import (
	"fmt"
	"strings"

	"github.com/sells-group/reviewlead-cli/internal/model"
)

// defaultTopCount is how many leads the digest lists when no count is given.
const defaultTopCount = 5

// Build renders a short human-readable summary of a scored run: total
// count, per-tier counts, and the top N leads. Pure string building; the
// input is expected to already be sorted by score descending.
func Build(leads []model.ScoredLead, topCount int) string {
	if topCount <= 0 {
		topCount = defaultTopCount
	}

	tiers := map[model.Priority]int{}
	for _, l := range leads {
		tiers[l.Priority]++
	}

	var b strings.Builder
	b.WriteString("Review Lead Digest\n")
	fmt.Fprintf(&b, "Total leads: %d\n", len(leads))
	fmt.Fprintf(&b, "  critical: %d\n", tiers[model.PriorityCritical])
	fmt.Fprintf(&b, "  high:     %d\n", tiers[model.PriorityHigh])
	fmt.Fprintf(&b, "  medium:   %d\n", tiers[model.PriorityMedium])
	fmt.Fprintf(&b, "  low:      %d\n", tiers[model.PriorityLow])

	n := topCount
	if n > len(leads) {
		n = len(leads)
	}
	fmt.Fprintf(&b, "\nTop %d leads:\n", n)
	for i := 0; i < n; i++ {
		l := leads[i]
		fmt.Fprintf(&b, "%d. %s — score %d (%s)\n",
			i+1, l.Enriched.Business.Name, l.Score, l.Priority)
	}

	return b.String()
}
