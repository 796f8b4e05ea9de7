package generator

import (
	"fmt"

	"travelplanner/internal/domain/models"
)

const promptTemplate = `You are an expert travel planner. Create a detailed travel itinerary based on the following information:

Source: %s
Destination: %s
Travel Dates: %s
Number of Travelers: %s
Interests: %s

Please provide a comprehensive travel plan that includes:
1. Day-by-day itinerary
2. Recommended accommodations
3. Transportation options
4. Must-visit attractions based on their interests
5. Local restaurants and food recommendations
6. Budget estimates
7. Tips and important information

Format the response in a clear, organized manner with sections and bullet points where appropriate.`

// BuildPrompt interpolates the trip parameters into the fixed planning prompt.
func BuildPrompt(trip models.TripRequest) string {
	return fmt.Sprintf(promptTemplate,
		trip.Source,
		trip.Destination,
		trip.Dates,
		trip.Travelers.String(),
		trip.Interests,
	)
}
