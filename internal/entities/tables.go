package entities

// Table is a fixed, ordered list of mutually exclusive options for one
// character facet. Tables are built once at package init and cannot be
// modified by callers.
type Table struct {
	name    string
	entries []string
}

func newTable(name string, entries ...string) Table {
	if len(entries) == 0 {
		panic("entities: table " + name + " has no entries")
	}
	return Table{name: name, entries: entries}
}

// Name returns the facet the table describes
func (t Table) Name() string {
	return t.name
}

// Len returns the number of entries
func (t Table) Len() int {
	return len(t.entries)
}

// At returns the entry at index i, or false when i is outside [0, Len()).
func (t Table) At(i int) (string, bool) {
	if i < 0 || i >= len(t.entries) {
		return "", false
	}
	return t.entries[i], true
}

// Entries returns a copy of the table's entries
func (t Table) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

// Contains reports whether value is one of the table's entries
func (t Table) Contains(value string) bool {
	for _, e := range t.entries {
		if e == value {
			return true
		}
	}
	return false
}

// Lineage indexes
const (
	LineageAundae = 0
	LineageBerne  = 1
	LineageQuarra = 2
	LineageClean  = 3
)

// Oath indexes
const (
	OathAssassin = 0
	OathInnocent = 1
)

// Category tables
var (
	Races = newTable("race",
		"an Altmer", "an Argonian", "a Dunmer", "an Imperial", "an Orc",
		"a Bosmer", "a Breton", "a Khajiit", "a Nord", "a Redguard",
	)

	Classes = newTable("class",
		"An Archer", "A Barbarian", "A Crusader", "A Knight",
		"A Rogue", "A Scout", "A Warrior", "A Battlemage", "A Healer",
		"A Mage", "A Knightblade", "A Sorcerer", "A Spellsword", "A Witchhunter",
		"An Acrobat", "An Agent", "A Monk", "A Thief",
		"An Assassin", "A Bard", "A Pilgrim",
	)

	Signs = newTable("sign",
		"The Mage", "The Warrior", "The Thief", "The Serpent", "The Lady", "The Steed", "The Tower",
		"The Lord", "The Apprentice", "The Atronach", "The Ritual", "The Lover", "The Shadow",
	)

	Houses = newTable("house",
		"Hlaalu", "Redoran", "Telvanni",
	)

	Lineages = newTable("lineage",
		"of the Aundae Clan,", "of the Berne Clan,", "of the Quarra Clan,", "clean,",
	)

	Faiths = newTable("faith",
		"The Tribunal Temple,", "The Imperial Cult,", "Nothing,", "The Powerful Daedra,",
	)

	Allegiances = newTable("allegiance",
		"The Imperial Legion.", "Fortune.",
	)

	Oaths = newTable("oath",
		"are an Assassin for The Morag Tong.", "generally eschew needless murder.",
	)
)
