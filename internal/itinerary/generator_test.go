package itinerary_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planventure/internal/itinerary"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDailyActivities_ArrivalDay(t *testing.T) {
	got := itinerary.DailyActivities(1, 3, itinerary.City)

	assert.Equal(t, []string{
		"Arrive in the city",
		"Check into hotel",
		"Dinner at local restaurant",
	}, got)
}

func TestDailyActivities_SingleDayTripIsArrivalOnly(t *testing.T) {
	// A one-day trip is treated as an arrival day with no evening entry.
	got := itinerary.DailyActivities(1, 1, itinerary.City)

	assert.Equal(t, []string{
		"Arrive in the city",
		"Check into hotel",
	}, got)
}

func TestDailyActivities_DepartureDayTruncatesToFour(t *testing.T) {
	// One morning entry plus the full four-entry departure list accumulates
	// five; the result is cut down to four.
	got := itinerary.DailyActivities(3, 3, itinerary.City)

	assert.Equal(t, []string{
		"Historic district exploration",
		"Final city walk",
		"Last-minute shopping",
		"Coffee at local café",
	}, got)
}

func TestDailyActivities_MiddleDayDropsEveningEntry(t *testing.T) {
	// 2 morning + 2 afternoon + 1 evening accumulates five; the evening entry
	// is the one trimmed off.
	got := itinerary.DailyActivities(2, 3, itinerary.City)

	assert.Equal(t, []string{
		"Historic district exploration",
		"Famous landmarks tour",
		"Shopping districts",
		"Cultural sites visit",
	}, got)
}

func TestDailyActivities_NeverExceedsFour(t *testing.T) {
	archetypes := []itinerary.Archetype{
		itinerary.Beach, itinerary.City, itinerary.Mountain, itinerary.Cultural,
		itinerary.Adventure, itinerary.Business, itinerary.Romantic, itinerary.Family,
	}

	for _, a := range archetypes {
		for totalDays := 1; totalDays <= 5; totalDays++ {
			for dayNum := 1; dayNum <= totalDays; dayNum++ {
				got := itinerary.DailyActivities(dayNum, totalDays, a)
				assert.LessOrEqual(t, len(got), 4,
					"archetype %s day %d/%d", a, dayNum, totalDays)
				assert.NotEmpty(t, got)
			}
		}
	}
}

func TestDailyActivities_UnknownArchetypeFallsBackToCity(t *testing.T) {
	got := itinerary.DailyActivities(2, 3, itinerary.Archetype(42))
	want := itinerary.DailyActivities(2, 3, itinerary.City)
	assert.Equal(t, want, got)
}

func TestDayNote(t *testing.T) {
	assert.Equal(t, "Comfortable walking shoes recommended", itinerary.DayNote(1, 3, itinerary.City))
	assert.Equal(t, "Book popular attractions in advance", itinerary.DayNote(2, 3, itinerary.City))
	assert.Equal(t, "Allow extra time for airport transfer", itinerary.DayNote(3, 3, itinerary.City))
}

func TestDayNote_SingleDayTripGetsFirstDayNote(t *testing.T) {
	// Day 1 of a 1-day trip is both first and last; the first-day note wins.
	assert.Equal(t, "Apply sunscreen and stay hydrated", itinerary.DayNote(1, 1, itinerary.Beach))
}

func TestDayNote_UnknownArchetypeFallsBackToCity(t *testing.T) {
	assert.Equal(t, "Book popular attractions in advance", itinerary.DayNote(2, 4, itinerary.Archetype(-1)))
}

func TestGenerate_ThreeDayCityTrip(t *testing.T) {
	plans := itinerary.Generate(
		date(2025, time.September, 1), date(2025, time.September, 3),
		"Paris, France", "", "")

	require.Len(t, plans, 3)

	assert.Equal(t, 1, plans[0].Day)
	assert.Equal(t, "2025-09-01", plans[0].Date)
	assert.Equal(t, []string{
		"Arrive in the city",
		"Check into hotel",
		"Dinner at local restaurant",
	}, plans[0].Activities)
	assert.Equal(t, "Comfortable walking shoes recommended", plans[0].Notes)

	assert.Equal(t, 2, plans[1].Day)
	assert.Equal(t, "2025-09-02", plans[1].Date)
	assert.Len(t, plans[1].Activities, 4)

	assert.Equal(t, 3, plans[2].Day)
	assert.Equal(t, "2025-09-03", plans[2].Date)
	assert.Equal(t, []string{
		"Historic district exploration",
		"Final city walk",
		"Last-minute shopping",
		"Coffee at local café",
	}, plans[2].Activities)
	assert.Equal(t, "Allow extra time for airport transfer", plans[2].Notes)
}

func TestGenerate_TitleContributesToClassification(t *testing.T) {
	plans := itinerary.Generate(
		date(2025, time.June, 1), date(2025, time.June, 2),
		"Somewhere", "", "Our honeymoon")

	require.Len(t, plans, 2)
	assert.Equal(t, []string{
		"Romantic arrival",
		"Check into romantic suite",
		"Candlelit dinner",
	}, plans[0].Activities)
}

func TestGenerate_LengthMatchesInclusiveDuration(t *testing.T) {
	start := date(2025, time.March, 10)
	for span := 0; span <= 14; span++ {
		end := start.AddDate(0, 0, span)
		plans := itinerary.Generate(start, end, "Tokyo", "", "")

		require.Len(t, plans, span+1, "span %d", span)
		for i, p := range plans {
			assert.Equal(t, i+1, p.Day)
			assert.Equal(t, start.AddDate(0, 0, i).Format("2006-01-02"), p.Date)
		}
	}
}

func TestGenerate_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, time.May, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2025, time.May, 3, 0, 15, 0, 0, time.UTC)

	plans := itinerary.Generate(start, end, "London", "", "")

	require.Len(t, plans, 3)
	assert.Equal(t, "2025-05-01", plans[0].Date)
	assert.Equal(t, "2025-05-03", plans[2].Date)
}

func TestBasic(t *testing.T) {
	plans := itinerary.Basic(date(2025, time.July, 4), date(2025, time.July, 7))

	require.Len(t, plans, 4)

	assert.Equal(t, []string{"Arrive at destination", "Check into accommodation", "Explore nearby area"}, plans[0].Activities)
	assert.Equal(t, []string{"Morning sightseeing", "Lunch at local restaurant", "Afternoon activities", "Evening relaxation"}, plans[1].Activities)
	assert.Equal(t, []string{"Final sightseeing", "Pack and check out", "Departure"}, plans[3].Activities)

	for i, p := range plans {
		assert.Equal(t, fmt.Sprintf("Day %d of your trip", i+1), p.Notes)
	}
}

func TestBasic_SingleDay(t *testing.T) {
	d := date(2025, time.July, 4)
	plans := itinerary.Basic(d, d)

	require.Len(t, plans, 1)
	assert.Equal(t, 1, plans[0].Day)
	assert.Equal(t, "Day 1 of your trip", plans[0].Notes)
}
