// Package itinerary builds day-by-day itinerary templates from trip details.
// It is a pure computation over static lookup tables: no I/O, no shared
// mutable state, safe to call from any number of goroutines.
package itinerary

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

const maxActivitiesPerDay = 4

// DayPlan is one day of a generated itinerary. Day numbers are 1-based and
// dates are ISO YYYY-MM-DD strings, matching the serialized form stored on the
// trip record.
type DayPlan struct {
	Day        int      `json:"day"`
	Date       string   `json:"date"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes"`
}

// Classify maps free-text trip details to an archetype by keyword scoring.
// Matching is case-insensitive substring containment ("island" matches inside
// "mainland"). The archetype with the strictly highest keyword count wins;
// ties go to the first archetype in declaration order. No keyword hits at all
// defaults to City.
func Classify(destination, description string) Archetype {
	text := strings.ToLower(destination + " " + description)

	best := City
	bestScore := 0
	for a := Beach; a < archetypeCount; a++ {
		score := 0
		for _, kw := range keywordTable[a] {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = a
			bestScore = score
		}
	}
	return best
}

// DailyActivities selects the activities for one day of a trip. dayNum is
// 1-based; totalDays is the inclusive trip length. The result never exceeds
// four entries: the departure-day branch can accumulate up to six, and the
// overflow is trimmed on purpose rather than treated as an error.
func DailyActivities(dayNum, totalDays int, a Archetype) []string {
	t := templatesFor(a)

	var activities []string
	switch {
	case dayNum == 1:
		// Arrival day, even when it is also the only day.
		activities = append(activities, firstN(t.Arrival, 2)...)
		if totalDays > 1 {
			activities = append(activities, firstN(t.Evening, 1)...)
		}
	case dayNum == totalDays:
		activities = append(activities, firstN(t.Morning, 1)...)
		activities = append(activities, t.Departure...)
	default:
		activities = append(activities, firstN(t.Morning, 2)...)
		activities = append(activities, firstN(t.Afternoon, 2)...)
		activities = append(activities, firstN(t.Evening, 1)...)
	}

	if len(activities) > maxActivitiesPerDay {
		activities = activities[:maxActivitiesPerDay]
	}
	return activities
}

// DayNote returns the travel tip for one day of a trip. The first-day case is
// checked before the last-day case, so a one-day trip gets the first-day note.
// That mirrors how arrival-day activities win on one-day trips; changing the
// precedence would silently change stored itineraries.
func DayNote(dayNum, totalDays int, a Archetype) string {
	notes := notesFor(a)

	if dayNum == 1 {
		return notes.First
	}
	if dayNum == totalDays {
		return notes.Last
	}
	return notes.Middle
}

// Generate builds a full itinerary for the trip span [start, end], one DayPlan
// per calendar day inclusive of both endpoints. The caller guarantees
// end >= start. Generate never fails: any internal error degrades to the
// destination-unaware Basic itinerary instead of propagating.
func Generate(start, end time.Time, destination, description, title string) []DayPlan {
	plans, err := generate(start, end, destination, description, title)
	if err != nil {
		return Basic(start, end)
	}
	return plans
}

func generate(start, end time.Time, destination, description, title string) (plans []DayPlan, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("itinerary generation: %v", r)
		}
	}()

	duration := inclusiveDays(start, end)
	archetype := Classify(destination, description+" "+title)

	for dayNum := 1; dayNum <= duration; dayNum++ {
		date := dateOnly(start).AddDate(0, 0, dayNum-1)
		plans = append(plans, DayPlan{
			Day:        dayNum,
			Date:       date.Format(dateLayout),
			Activities: DailyActivities(dayNum, duration, archetype),
			Notes:      DayNote(dayNum, duration, archetype),
		})
	}
	return plans, nil
}

// Basic is the fallback generator: a fixed template with no
// destination-awareness. It never fails.
func Basic(start, end time.Time) []DayPlan {
	duration := inclusiveDays(start, end)

	plans := make([]DayPlan, 0, duration)
	for dayNum := 1; dayNum <= duration; dayNum++ {
		var activities []string
		switch {
		case dayNum == 1:
			activities = []string{"Arrive at destination", "Check into accommodation", "Explore nearby area"}
		case dayNum == duration:
			activities = []string{"Final sightseeing", "Pack and check out", "Departure"}
		default:
			activities = []string{"Morning sightseeing", "Lunch at local restaurant", "Afternoon activities", "Evening relaxation"}
		}

		date := dateOnly(start).AddDate(0, 0, dayNum-1)
		plans = append(plans, DayPlan{
			Day:        dayNum,
			Date:       date.Format(dateLayout),
			Activities: activities,
			Notes:      fmt.Sprintf("Day %d of your trip", dayNum),
		})
	}
	return plans
}

// inclusiveDays counts calendar days in [start, end], both endpoints included.
// Timestamps are normalized to midnight UTC first so wall-clock components and
// DST offsets cannot skew the count.
func inclusiveDays(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	return int(e.Sub(s).Hours()/24) + 1
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func firstN(list []string, n int) []string {
	if len(list) < n {
		n = len(list)
	}
	return list[:n]
}
