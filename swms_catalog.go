package policygen

import "strings"

// RiskLevel is an ordered severity: low < medium < high < extreme.
type RiskLevel string

// Risk levels.
const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskExtreme RiskLevel = "extreme"
)

// RiskLevels lists the levels from lowest to highest.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskExtreme}

// normalize returns the canonical level. Unrecognised values become medium.
func (r RiskLevel) normalize() RiskLevel {
	switch l := RiskLevel(strings.ToLower(strings.TrimSpace(string(r)))); l {
	case RiskLow, RiskMedium, RiskHigh, RiskExtreme:
		return l
	}
	return RiskMedium
}

// Rank orders the levels from 1 (low) to 4 (extreme).
func (r RiskLevel) Rank() int {
	switch r.normalize() {
	case RiskLow:
		return 1
	case RiskHigh:
		return 3
	case RiskExtreme:
		return 4
	}
	return 2
}

// Label returns the table value: LOW, MEDIUM, HIGH or EXTREME.
func (r RiskLevel) Label() string {
	return strings.ToUpper(string(r.normalize()))
}

// Valid reports whether r is one of the four levels.
func (r RiskLevel) Valid() bool {
	switch RiskLevel(strings.ToLower(strings.TrimSpace(string(r)))) {
	case RiskLow, RiskMedium, RiskHigh, RiskExtreme:
		return true
	}
	return false
}

// HighRiskWork is one High Risk Construction Work category.
type HighRiskWork struct {
	Key   string
	Label string
}

// HighRiskWorkCategories is the fixed HRCW vocabulary, in table order.
var HighRiskWorkCategories = []HighRiskWork{
	{"falls", "Risk of a person falling more than 2 metres"},
	{"telecom-tower", "Work on a telecommunication tower"},
	{"demolition", "Demolition of an element of a structure that is load-bearing"},
	{"asbestos", "Work involving the disturbance of asbestos"},
	{"temporary-support", "Structural alterations or repairs that require temporary support"},
	{"confined-space", "Work in or near a confined space"},
	{"excavation", "Work in or near a shaft or trench deeper than 1.5 metres, or a tunnel"},
	{"explosives", "Work involving the use of explosives"},
	{"gas-mains", "Work on or near pressurised gas distribution mains or piping"},
	{"chemical-lines", "Work on or near chemical, fuel or refrigerant lines"},
	{"electrical", "Work on or near energised electrical installations or services"},
	{"contaminated-atmosphere", "Work in an area that may have a contaminated or flammable atmosphere"},
	{"tilt-up", "Work involving tilt-up or precast concrete elements"},
	{"traffic", "Work on, in or adjacent to a road, railway, shipping lane or other traffic corridor in use"},
	{"mobile-plant", "Work in an area where there is movement of powered mobile plant"},
	{"extreme-temperature", "Work in an area with artificial extremes of temperature"},
	{"drowning", "Work in or near water or other liquid that involves a risk of drowning"},
	{"diving", "Diving work"},
}

// findHighRiskWork matches a selection by key or label, ignoring case.
func findHighRiskWork(s string) (int, bool) {
	s = strings.TrimSpace(s)
	for i, c := range HighRiskWorkCategories {
		if strings.EqualFold(s, c.Key) || strings.EqualFold(s, c.Label) {
			return i, true
		}
	}
	return 0, false
}

// Checkbox markers used in HRCW tables.
const (
	checked   = "[X]"
	unchecked = "[ ]"
)

// PPESelection toggles the standard personal protective equipment items.
type PPESelection struct {
	HardHat           bool `yaml:"hardHat"`
	SafetyGlasses     bool `yaml:"safetyGlasses"`
	HearingProtection bool `yaml:"hearingProtection"`
	HighVis           bool `yaml:"highVis"`
	SafetyBoots       bool `yaml:"safetyBoots"`
	Gloves            bool `yaml:"gloves"`
	Respirator        bool `yaml:"respirator"`
	Harness           bool `yaml:"harness"`
	FaceShield        bool `yaml:"faceShield"`
}

// ppeItem maps an equipment item to its Australian/New Zealand standard.
type ppeItem struct {
	Item     string
	Standard string
}

// items returns the selected equipment in fixed order.
func (p PPESelection) items() []ppeItem {
	lookup := []struct {
		on   bool
		item ppeItem
	}{
		{p.HardHat, ppeItem{"Hard hat", "AS/NZS 1801"}},
		{p.SafetyGlasses, ppeItem{"Safety glasses", "AS/NZS 1337.1"}},
		{p.HearingProtection, ppeItem{"Hearing protection", "AS/NZS 1270"}},
		{p.HighVis, ppeItem{"High-visibility clothing", "AS/NZS 4602.1"}},
		{p.SafetyBoots, ppeItem{"Safety boots", "AS/NZS 2210.3"}},
		{p.Gloves, ppeItem{"Gloves", "AS/NZS 2161"}},
		{p.Respirator, ppeItem{"Respirator / dust mask", "AS/NZS 1716"}},
		{p.Harness, ppeItem{"Fall-arrest harness", "AS/NZS 1891.1"}},
		{p.FaceShield, ppeItem{"Face shield", "AS/NZS 1337.1"}},
	}
	var out []ppeItem
	for _, l := range lookup {
		if l.on {
			out = append(out, l.item)
		}
	}
	return out
}

// Consequence and likelihood scales of the risk matrix.
var (
	consequences = []string{"Insignificant", "Minor", "Moderate", "Major", "Catastrophic"}
	likelihoods  = []string{"Almost Certain", "Likely", "Possible", "Unlikely", "Rare"}
)

// riskMatrix holds the level for each likelihood (row) and consequence (column).
var riskMatrix = [5][5]RiskLevel{
	{RiskHigh, RiskHigh, RiskExtreme, RiskExtreme, RiskExtreme},
	{RiskMedium, RiskHigh, RiskHigh, RiskExtreme, RiskExtreme},
	{RiskLow, RiskMedium, RiskHigh, RiskExtreme, RiskExtreme},
	{RiskLow, RiskLow, RiskMedium, RiskHigh, RiskExtreme},
	{RiskLow, RiskLow, RiskMedium, RiskHigh, RiskHigh},
}

// riskActions describes the response required at each level.
var riskActions = []struct {
	Level  RiskLevel
	Action string
}{
	{RiskExtreme, "Do not start work. Eliminate the hazard or reduce the risk before proceeding."},
	{RiskHigh, "Senior management approval required. Implement controls before work starts."},
	{RiskMedium, "Proceed with controls in place and monitor. Supervisor to review."},
	{RiskLow, "Manage by routine procedures."},
}

// hierarchyOfControls lists control types from most to least effective.
var hierarchyOfControls = [][]string{
	{"1", "Elimination", "Remove the hazard completely, e.g. prefabricate at ground level to avoid work at height"},
	{"2", "Substitution", "Replace the hazard with something safer, e.g. use a water-based paint"},
	{"3", "Isolation", "Separate people from the hazard, e.g. barricades or exclusion zones"},
	{"4", "Engineering controls", "Change plant or processes, e.g. guard rails, ventilation, dust extraction"},
	{"5", "Administrative controls", "Procedures, training, signage, permits and supervision"},
	{"6", "Personal protective equipment", "Last line of defence, used with other controls"},
}
