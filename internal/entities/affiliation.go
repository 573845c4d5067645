package entities

// Affiliation is the guild leaning implied by a character's birth sign
type Affiliation int

// Affiliations. AffiliationNone is only reported for a sign index outside
// the sign table.
const (
	AffiliationNone Affiliation = iota
	AffiliationMighty
	AffiliationMagical
	AffiliationSneaky
)

// bandOrder lists affiliations by sign band, lowest indexes first
var bandOrder = [...]Affiliation{
	AffiliationMighty,
	AffiliationMagical,
	AffiliationSneaky,
}

// String returns the affiliation name
func (a Affiliation) String() string {
	switch a {
	case AffiliationMighty:
		return "mighty"
	case AffiliationMagical:
		return "magical"
	case AffiliationSneaky:
		return "sneaky"
	default:
		return "none"
	}
}

// AffiliationForSign maps a sign index to its affiliation. The sign table
// is split into three contiguous bands, band = index*3/len: with 13 signs
// that is 0-4 mighty, 5-8 magical and 9-12 sneaky.
func AffiliationForSign(index int) Affiliation {
	if index < 0 || index >= Signs.Len() {
		return AffiliationNone
	}
	return bandOrder[index*len(bandOrder)/Signs.Len()]
}

// RareLineage returns the lineage index a rare blood draw resolves to for
// the affiliation. The mapping is mighty to Quarra, sneaky to Berne and
// magical to Aundae; AffiliationNone has no rare lineage.
func RareLineage(a Affiliation) (int, bool) {
	switch a {
	case AffiliationMighty:
		return LineageQuarra, true
	case AffiliationSneaky:
		return LineageBerne, true
	case AffiliationMagical:
		return LineageAundae, true
	default:
		return 0, false
	}
}
