package generator

import (
	"fmt"

	"github.com/KirkDiggler/mcg/internal/entities"
)

const (
	headerLine = "\t\t\t//===================="
	linePrefix = "\t\t\t||"
)

func formatLines(c *entities.Character) []string {
	lines := []string{
		headerLine,
		fmt.Sprintf("%sYou will be %s,", linePrefix, c.Race),
		fmt.Sprintf("%s%s born under %s sign,", linePrefix, c.Class, c.Sign),
		fmt.Sprintf("%sHireling of house %s.", linePrefix, c.House),
	}

	if c.Lineage != "" {
		lines = append(lines, fmt.Sprintf("%sYour blood is %s", linePrefix, c.Lineage))
	}

	return append(lines,
		fmt.Sprintf("%sYou believe in %s", linePrefix, c.Faith),
		fmt.Sprintf("%sYou are a soldier of %s", linePrefix, c.Allegiance),
		fmt.Sprintf("%sAnd you %s", linePrefix, c.Oath),
	)
}
