package draft

import "strings"

// FinalMarker prefixes the terminal output of a cycle.
const FinalMarker = "FINAL STANDUP:"

// Render serialises the draft under the fixed heading structure. All three
// headings are always present, even when a section is empty.
func Render(d Draft) string {
	var b strings.Builder
	b.WriteString("# Standup Summary\n")
	writeSection(&b, "## Accomplishments", d.Accomplishments)
	writeSection(&b, "## Blockers", d.Blockers)
	writeSection(&b, "## Plans", d.Plans)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// RenderFinal is Render with the terminal cycle marker prepended.
func RenderFinal(d Draft) string {
	return FinalMarker + "\n" + Render(d)
}

func writeSection(b *strings.Builder, heading string, bullets []string) {
	b.WriteString(heading)
	b.WriteByte('\n')
	for _, bl := range bullets {
		b.WriteString(bl)
		b.WriteByte('\n')
	}
}
