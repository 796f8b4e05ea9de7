package generator

import (
	"context"
	"strings"
)

// MockGenerator returns a canned itinerary for local runs without an API key.
type MockGenerator struct{}

func (MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	destination := "your destination"
	for _, line := range strings.Split(prompt, "\n") {
		if v, ok := strings.CutPrefix(line, "Destination: "); ok && strings.TrimSpace(v) != "" {
			destination = strings.TrimSpace(v)
		}
	}

	var sb strings.Builder
	sb.WriteString("## Trip to " + destination + "\n\n")
	sb.WriteString("A sample plan generated without calling a model.\n\n")
	sb.WriteString("Day 1: Arrival\n")
	sb.WriteString("* Check in and walk around the old town\n")
	sb.WriteString("* Dinner near the hotel\n\n")
	sb.WriteString("Day 2: Highlights\n")
	sb.WriteString("- Morning museum visit\n")
	sb.WriteString("Lunch: local market\n\n")
	sb.WriteString("Accommodation\n")
	sb.WriteString("- Mid-range hotel in the center\n\n")
	sb.WriteString("Budget Estimates\n")
	sb.WriteString("- Around 150 per person per day\n\n")
	sb.WriteString("Tips\n")
	sb.WriteString("- Book popular attractions ahead of time\n")
	return sb.String(), nil
}
