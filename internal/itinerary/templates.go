package itinerary

// Static lookup tables for the generator. All of them are initialized once and
// only ever read after that, so the package is safe for concurrent use.

// keywordTable maps each archetype to the lowercase substrings that vote for it
// during classification.
var keywordTable = [archetypeCount][]string{
	Beach:     {"beach", "coast", "island", "resort", "tropical", "bali", "hawaii", "maldives", "caribbean"},
	City:      {"city", "urban", "metropolitan", "downtown", "paris", "tokyo", "london", "new york", "berlin"},
	Mountain:  {"mountain", "alpine", "peak", "summit", "hiking", "trekking", "alps", "himalayas"},
	Cultural:  {"museum", "historical", "heritage", "temple", "cathedral", "palace", "ancient", "rome", "athens"},
	Adventure: {"adventure", "safari", "wildlife", "national park", "outdoor", "camping", "expedition"},
	Business:  {"conference", "business", "meeting", "corporate", "convention", "trade show"},
	Romantic:  {"honeymoon", "romantic", "couples", "anniversary", "valentine"},
	Family:    {"family", "kids", "children", "theme park", "zoo", "aquarium", "disney"},
}

// activitySet holds the candidate activities for one archetype, bucketed by
// day-part. Arrival and departure are distinct from morning/afternoon/evening.
type activitySet struct {
	Arrival   []string
	Morning   []string
	Afternoon []string
	Evening   []string
	Departure []string
}

var activityTemplates = [archetypeCount]activitySet{
	Beach: {
		Arrival:   []string{"Arrive at destination", "Check into beachfront accommodation", "Welcome drink and resort orientation"},
		Morning:   []string{"Beach relaxation", "Swimming and sunbathing", "Water sports activities", "Beach volleyball"},
		Afternoon: []string{"Snorkeling or diving", "Beachside lunch", "Spa and wellness treatments", "Local market visit"},
		Evening:   []string{"Sunset viewing", "Beachside dinner", "Live music or entertainment", "Night beach walk"},
		Departure: []string{"Final beach morning", "Souvenir shopping", "Departure preparations", "Check out and transfer"},
	},
	City: {
		Arrival:   []string{"Arrive in the city", "Check into hotel", "Initial city orientation walk"},
		Morning:   []string{"Historic district exploration", "Famous landmarks tour", "Museums and galleries", "Local breakfast spots"},
		Afternoon: []string{"Shopping districts", "Cultural sites visit", "Local cuisine lunch", "Architectural tours"},
		Evening:   []string{"Dinner at local restaurant", "Nightlife exploration", "Theater or entertainment", "City lights tour"},
		Departure: []string{"Final city walk", "Last-minute shopping", "Coffee at local café", "Departure to airport"},
	},
	Mountain: {
		Arrival:   []string{"Arrive at mountain destination", "Check into lodge", "Equipment check and preparation"},
		Morning:   []string{"Hiking and trekking", "Nature walks", "Wildlife spotting", "Photography sessions"},
		Afternoon: []string{"Mountain climbing", "Scenic viewpoints", "Picnic lunch in nature", "Adventure activities"},
		Evening:   []string{"Campfire and storytelling", "Stargazing", "Mountain lodge dinner", "Rest and recovery"},
		Departure: []string{"Final morning hike", "Equipment return", "Scenic drive back", "Departure"},
	},
	Cultural: {
		Arrival:   []string{"Arrive at cultural destination", "Check into heritage hotel", "Initial historical overview"},
		Morning:   []string{"Museums and galleries", "Historical sites tour", "Ancient monuments", "Guided cultural walks"},
		Afternoon: []string{"Local artisan workshops", "Traditional performances", "Heritage buildings", "Cultural cuisine"},
		Evening:   []string{"Traditional dinner show", "Local festivals (if available)", "Cultural center visits", "Evening prayers/ceremonies"},
		Departure: []string{"Final museum visit", "Cultural souvenir shopping", "Traditional breakfast", "Departure"},
	},
	Adventure: {
		Arrival:   []string{"Arrive at adventure base", "Equipment briefing", "Safety orientation"},
		Morning:   []string{"Outdoor adventures", "Wildlife safari", "Rock climbing", "River rafting"},
		Afternoon: []string{"Extreme sports", "Nature expeditions", "Survival training", "Photography tours"},
		Evening:   []string{"Campfire activities", "Adventure stories", "Outdoor dining", "Night safaris"},
		Departure: []string{"Final adventure activity", "Equipment return", "Group photos", "Safe departure"},
	},
	Business: {
		Arrival:   []string{"Arrive at destination", "Check into business hotel", "Conference registration"},
		Morning:   []string{"Business meetings", "Conference sessions", "Networking breakfast", "Keynote presentations"},
		Afternoon: []string{"Workshops and seminars", "Business lunches", "Client meetings", "Trade show visits"},
		Evening:   []string{"Business dinners", "Networking events", "Industry meetups", "Work preparation"},
		Departure: []string{"Final meetings", "Follow-up sessions", "Business card exchange", "Departure"},
	},
	Romantic: {
		Arrival:   []string{"Romantic arrival", "Check into romantic suite", "Welcome champagne"},
		Morning:   []string{"Couples spa treatment", "Romantic breakfast", "Private tours", "Photography session"},
		Afternoon: []string{"Romantic lunch", "Couples activities", "Wine tasting", "Scenic walks"},
		Evening:   []string{"Candlelit dinner", "Sunset viewing", "Dancing", "Private entertainment"},
		Departure: []string{"Romantic breakfast", "Memory collection", "Final romantic moments", "Departure"},
	},
	Family: {
		Arrival:   []string{"Family arrival", "Check into family accommodation", "Family orientation"},
		Morning:   []string{"Family attractions", "Theme parks", "Interactive museums", "Educational tours"},
		Afternoon: []string{"Family-friendly activities", "Picnic lunch", "Playgrounds and parks", "Family games"},
		Evening:   []string{"Family dinner", "Entertainment shows", "Family bonding time", "Early rest for kids"},
		Departure: []string{"Final family activity", "Souvenir shopping for kids", "Family photos", "Departure"},
	},
}

// noteSet holds the travel tip shown for each day-role.
type noteSet struct {
	First  string
	Middle string
	Last   string
}

var noteTemplates = [archetypeCount]noteSet{
	Beach: {
		First:  "Apply sunscreen and stay hydrated",
		Middle: "Best time for water activities is morning",
		Last:   "Pack souvenirs and enjoy final beach time",
	},
	City: {
		First:  "Comfortable walking shoes recommended",
		Middle: "Book popular attractions in advance",
		Last:   "Allow extra time for airport transfer",
	},
	Mountain: {
		First:  "Check weather conditions and pack accordingly",
		Middle: "Start early for best views and weather",
		Last:   "Ensure all equipment is returned",
	},
	Cultural: {
		First:  "Respect local customs and dress codes",
		Middle: "Photography may be restricted in some areas",
		Last:   "Visit gift shops for authentic souvenirs",
	},
	Adventure: {
		First:  "Safety briefing is mandatory",
		Middle: "Follow all safety guidelines",
		Last:   "Share your adventure stories",
	},
	Business: {
		First:  "Confirm all meeting times and locations",
		Middle: "Networking opportunities available",
		Last:   "Follow up on business connections made",
	},
	Romantic: {
		First:  "Special romantic surprise planned",
		Middle: "Perfect day for couples activities",
		Last:   "Create lasting memories together",
	},
	Family: {
		First:  "Keep kids engaged with family activities",
		Middle: "Balance fun with rest time",
		Last:   "Collect family photos and memories",
	},
}

// templatesFor returns the activity set for a, falling back to the city set for
// values outside the enum. Classify never produces such a value, but callers
// constructing archetypes by hand might.
func templatesFor(a Archetype) activitySet {
	if a < 0 || a >= archetypeCount {
		return activityTemplates[City]
	}
	return activityTemplates[a]
}

func notesFor(a Archetype) noteSet {
	if a < 0 || a >= archetypeCount {
		return noteTemplates[City]
	}
	return noteTemplates[a]
}
