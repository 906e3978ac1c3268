package builder

import "strings"

const tableHeader = "| Prüfidentifikator | Von | An | Beschreibung | Reaktion | Prozessschritt |\n" +
	"|-------------------|-----|----|--------------|----------|----------------|\n"

// tableRow renders one Markdown table row terminated by a newline.
func tableRow(cells ...string) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(c)
		sb.WriteString(" |")
	}

	sb.WriteString("\n")

	return sb.String()
}
