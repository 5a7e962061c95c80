// Package formatter renders interpretation tables and expansion results for
// terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/causalab/nodal/interpret"
)

var (
	nodeStyle     = color.New(color.FgCyan, color.Bold)
	positionStyle = color.New(color.FgHiBlue, color.Bold)
	displayStyle  = color.New(color.FgYellow)
	headerStyle   = color.New(color.FgWhite, color.Bold)
)

// FormatInterpretations renders a result as one block per node with a
// position / display / interpretation line per record.
func FormatInterpretations(result interpret.Result) string {
	var builder strings.Builder
	for i, node := range result {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(nodeStyle.Sprint(node.Node) + "\n")

		width := 0
		for _, rec := range node.Records {
			if len(rec.Display) > width {
				width = len(rec.Display)
			}
		}
		for _, rec := range node.Records {
			builder.WriteString(positionStyle.Sprintf("  %3d  ", rec.Position))
			builder.WriteString(displayStyle.Sprintf("%-*s", width, rec.Display))
			builder.WriteString("  " + rec.Interpretation + "\n")
		}
	}
	return builder.String()
}

// FormatExpansion renders expanded expressions, numbering them when the
// expansion produced more than one.
func FormatExpansion(expanded []string) string {
	if len(expanded) == 1 {
		return expanded[0] + "\n"
	}
	var builder strings.Builder
	builder.WriteString(headerStyle.Sprintf("%d expressions\n", len(expanded)))
	for i, e := range expanded {
		builder.WriteString(fmt.Sprintf("%3d  %s\n", i+1, e))
	}
	return builder.String()
}
