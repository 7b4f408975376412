package gifts

// PresetDefinition describes one intended bundle component without naming a
// concrete catalog row. Option ids are reassigned whenever the catalog is
// regenerated, so bundle contents are pinned by substring instead and
// resolved against the live catalog at read time.
type PresetDefinition struct {
	ProductName        string
	OptionTextContains string
	Quantity           int
}

// presetTable maps a gift package id to its intended components, in display
// order. Changing bundle composition is a code change, never a migration.
var presetTable = map[int][]PresetDefinition{
	1: {
		{ProductName: "Bučno olje", OptionTextContains: "0,25", Quantity: 1},
		{ProductName: "Bučna semena", OptionTextContains: "100", Quantity: 1},
	},
	2: {
		{ProductName: "Bučno olje", OptionTextContains: "0,5", Quantity: 1},
		{ProductName: "Med", OptionTextContains: "450", Quantity: 1},
	},
	3: {
		{ProductName: "Bučno olje", OptionTextContains: "1", Quantity: 1},
		{ProductName: "Bučna semena", OptionTextContains: "200", Quantity: 2},
		{ProductName: "Med", OptionTextContains: "900", Quantity: 1},
	},
	4: {
		{ProductName: "Bučno olje", OptionTextContains: "0,5", Quantity: 1},
		{ProductName: "Bučna semena", OptionTextContains: "200", Quantity: 1},
	},
}

// Presets returns the definition list for a package id, or nil when the id
// has no compiled presets.
func Presets(packageID int) []PresetDefinition {
	defs, ok := presetTable[packageID]
	if !ok {
		return nil
	}
	out := make([]PresetDefinition, len(defs))
	copy(out, defs)
	return out
}
