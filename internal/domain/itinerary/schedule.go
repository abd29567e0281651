package itinerary

import "fmt"

var badWeather = map[string]struct{}{
	"Rain":         {},
	"Snow":         {},
	"Drizzle":      {},
	"Thunderstorm": {},
}

// IsBadWeather reports whether condition calls for the indoor schedule.
func IsBadWeather(condition string) bool {
	_, ok := badWeather[condition]
	return ok
}

// ComposeSchedule builds the fixed eight item, two day schedule for a vibe. Only the
// Day 1 midday block and the closing Day 2 slot depend on the weather; the vibe is
// interpolated into the descriptions and never branched on.
func ComposeSchedule(vibe Vibe, condition string) []ScheduleItem {
	indoor := IsBadWeather(condition)
	schedule := make([]ScheduleItem, 0, 8)

	schedule = append(schedule, ScheduleItem{
		Time:        "Day 1 - 09:00",
		Activity:    "Arrival & Breakfast",
		Description: "Start your journey at a local cafe.",
		Icon:        "☕",
	})

	if indoor {
		schedule = append(schedule,
			ScheduleItem{
				Time:        "Day 1 - 11:00",
				Activity:    "Indoor Exploration",
				Description: fmt.Sprintf("Explore a %s-style library or museum to stay dry.", vibe),
				Icon:        "🏛️",
			},
			ScheduleItem{
				Time:        "Day 1 - 14:00",
				Activity:    "Cozy Lunch",
				Description: "Warm up with some hot soup in a vintage bistro.",
				Icon:        "🍜",
			},
			ScheduleItem{
				Time:        "Day 1 - 16:00",
				Activity:    "Art Gallery",
				Description: "Visit a surrealist art exhibition.",
				Icon:        "🖼️",
			},
		)
	} else {
		schedule = append(schedule,
			ScheduleItem{
				Time:        "Day 1 - 11:00",
				Activity:    "City Walk",
				Description: fmt.Sprintf("Walk through the streets searching for %s architecture.", vibe),
				Icon:        "🚶",
			},
			ScheduleItem{
				Time:        "Day 1 - 14:00",
				Activity:    "Park Picnic",
				Description: "Enjoy the clear skies in a symmetrical garden.",
				Icon:        "🌳",
			},
			ScheduleItem{
				Time:        "Day 1 - 16:00",
				Activity:    "Observation Deck",
				Description: "Get a panoramic view of the city.",
				Icon:        "🔭",
			},
		)
	}

	schedule = append(schedule,
		ScheduleItem{
			Time:        "Day 1 - 20:00",
			Activity:    "Themed Dinner",
			Description: fmt.Sprintf("Dinner at a restaurant that matches the %s aesthetic.", vibe),
			Icon:        "🍽️",
		},
		ScheduleItem{
			Time:        "Day 2 - 08:30",
			Activity:    "Hotel Breakfast",
			Description: "Refuel slowly before the second day of exploring.",
			Icon:        "🥐",
		},
		ScheduleItem{
			Time:        "Day 2 - 10:00",
			Activity:    "Market Visit",
			Description: "Hunt for artifacts in the local flea market.",
			Icon:        "🛍️",
		},
	)

	if indoor {
		schedule = append(schedule, ScheduleItem{
			Time:        "Day 2 - 13:00",
			Activity:    "Cinema",
			Description: "Catch a classic noir film at an old theater.",
			Icon:        "🎬",
		})
	} else {
		schedule = append(schedule, ScheduleItem{
			Time:        "Day 2 - 13:00",
			Activity:    "River Cruise",
			Description: "See the city from the water.",
			Icon:        "🚤",
		})
	}

	return schedule
}
