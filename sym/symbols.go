// Package sym defines the glyphs condax shows next to its commands.
// These symbols are stable across CLI help, tables and documentation.
package sym

// Command glyphs
const (
	Generate  = "⚄" // generate - draw conditions from one domain
	Entity    = "⍟" // entity - character with occupation
	Batch     = "⧉" // batch - seed ranges and export
	Runs      = "⊔" // runs - stored batches
	Axes      = "⋈" // axes - axis tables, policy and exclusions
	Domains   = "▤" // domains - registered condition tables
	Archetype = "✦" // archetype - narrative role search
	AM        = "≡" // am - configuration and system settings
)

// entry binds a glyph to its command and description
type entry struct {
	glyph       string
	command     string
	label       string
	description string
}

// registry is the canonical mapping between glyphs and commands
var registry = []entry{
	{Generate, "generate", "Generate", "Draw conditions from one domain"},
	{Entity, "entity", "Entity", "Draw a full entity (character + occupation)"},
	{Batch, "batch", "Batch", "Generate a seed range and export it"},
	{Runs, "runs", "Runs", "Inspect batches exported to SQLite"},
	{Axes, "axes", "Axes", "Show a domain's axes, policy and exclusions"},
	{Domains, "domains", "Domains", "List registered domains"},
	{Archetype, "archetype", "Archetype", "Search seeds for a narrative archetype"},
	{AM, "am", "Configuration", "Manage condax configuration"},
}

// Lookup tables built from the registry at init time.
var (
	// SymbolToCommand maps glyph strings to their command names
	SymbolToCommand map[string]string
	// CommandToSymbol maps command names to their glyph strings
	CommandToSymbol map[string]string
	// CommandDescriptions holds the one-line help text per command
	CommandDescriptions map[string]string
)

func init() {
	SymbolToCommand = make(map[string]string, len(registry))
	CommandToSymbol = make(map[string]string, len(registry))
	CommandDescriptions = make(map[string]string, len(registry))
	for _, e := range registry {
		SymbolToCommand[e.glyph] = e.command
		CommandToSymbol[e.command] = e.glyph
		CommandDescriptions[e.command] = e.description
	}
}

// Short returns "<glyph> <description>" for a command, for cobra Short
// fields. Unknown commands return "".
func Short(command string) string {
	glyph, ok := CommandToSymbol[command]
	if !ok {
		return ""
	}
	return glyph + " " + CommandDescriptions[command]
}

// Label returns the display label of a command
func Label(command string) string {
	for _, e := range registry {
		if e.command == command {
			return e.label
		}
	}
	return ""
}

// PaletteOrder defines the canonical ordering of commands in help output
var PaletteOrder = []string{Generate, Entity, Batch, Runs, Axes, Domains, Archetype, AM}
