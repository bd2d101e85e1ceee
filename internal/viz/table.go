package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/sublab/internal/lab"
)

// ObservationTable renders the recorded rows as plain aligned text. An empty
// table renders the header and a placeholder row.
func ObservationTable(obs []lab.Observation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s  %-6s  %s\n", "Time", "Temp", "Observation")
	fmt.Fprintf(&b, "%-6s  %-6s  %s\n", "------", "------", strings.Repeat("-", 44))
	if len(obs) == 0 {
		b.WriteString("(no observations recorded yet)\n")
		return b.String()
	}
	for _, o := range obs {
		fmt.Fprintf(&b, "%-6s  %-6s  %s\n",
			fmt.Sprintf("%d min", o.Time),
			fmt.Sprintf("%d°C", o.Temperature),
			o.Note)
	}
	return b.String()
}
