package itinerary

// Archetype is the destination category a trip gets classified into.
// Declaration order matters: it is the tie-break order used by Classify.
type Archetype int

const (
	Beach Archetype = iota
	City
	Mountain
	Cultural
	Adventure
	Business
	Romantic
	Family

	archetypeCount
)

var archetypeNames = [archetypeCount]string{
	Beach:     "beach",
	City:      "city",
	Mountain:  "mountain",
	Cultural:  "cultural",
	Adventure: "adventure",
	Business:  "business",
	Romantic:  "romantic",
	Family:    "family",
}

func (a Archetype) String() string {
	if a < 0 || a >= archetypeCount {
		return archetypeNames[City]
	}
	return archetypeNames[a]
}
