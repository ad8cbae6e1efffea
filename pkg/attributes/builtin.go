package attributes

// Well-known keys the resolver reads directly.
const (
	KeyID          = "id"
	KeyDescription = "description"
	KeyContent     = "content"
	KeyDetails     = "details"
	KeyText        = "text"
)

// NarrativeKeys lists the narrative attributes every registry must define.
var NarrativeKeys = []string{KeyDescription, KeyContent, KeyText, KeyDetails}

// builtin is the default vocabulary, covering every attribute name seen
// across the supported dashboard APIs.
var builtin = []Definition{
	// Explicit numbered properties
	text("property1", "Property 1"),
	text("property2", "Property 2"),
	text("property3", "Property 3"),
	text("property4", "Property 4"),

	// Common short fields
	text("name", "Name"),
	text("value", "Value"),
	text("title", "Title"),
	text("type", "Type"),
	text("category", "Category"),
	text("status", "Status"),
	integer("year", "Year"),

	// Music and media
	text("albumTitle", "Album Title"),
	text("artistName", "Artist Name"),
	text("director", "Director"),
	text("genre", "Genre"),
	integer("releaseYear", "Release Year"),

	// Academic
	text("author", "Author"),
	text("publisher", "Publisher"),
	text("subject", "Subject"),
	text("course", "Course"),
	text("code", "Code"),
	text("score", "Score"),
	text("grade", "Grade"),
	text("level", "Level"),
	text("duration", "Duration"),
	text("location", "Location"),
	text("instructor", "Instructor"),
	text("department", "Department"),

	// Mythology and culture
	text("mythology", "Mythology"),
	text("origin", "Origin"),
	text("culture", "Culture"),
	text("pantheon", "Pantheon"),
	text("domain", "Domain"),
	text("symbol", "Symbol"),
	text("power", "Power"),
	text("attribute", "Attribute"),
	text("role", "Role"),
	text("realm", "Realm"),
	text("family", "Family"),
	text("parent", "Parent"),
	text("child", "Child"),
	text("spouse", "Spouse"),
	text("weapon", "Weapon"),
	text("animal", "Animal"),
	text("element", "Element"),
	text("color", "Color"),
	text("number", "Number"),
	text("day", "Day"),
	text("month", "Month"),
	text("season", "Season"),
	text("planet", "Planet"),
	text("star", "Star"),
	text("stone", "Stone"),
	text("tree", "Tree"),
	text("flower", "Flower"),
	text("festival", "Festival"),
	text("temple", "Temple"),
	text("city", "City"),
	text("country", "Country"),
	text("region", "Region"),

	identifier(KeyID, "ID"),

	// Narrative order is the field inventory order.
	narrative(KeyDescription, "Description"),
	narrative(KeyContent, "Content"),
	narrative(KeyText, "Text"),
	narrative(KeyDetails, "Details"),
}

var defaultRegistry = MustNew(builtin)

// Default returns the built-in registry. It is shared and read-only.
func Default() *Registry {
	return defaultRegistry
}
