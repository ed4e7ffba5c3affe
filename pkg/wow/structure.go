// Package wow defines the canonical WoW 3.3.5a client directory structure.
//
// These paths are hard-coded in the client and must be followed exactly;
// files placed anywhere else inside a patch MPQ are silently ignored by
// the client. The table is plain configuration data built once at init
// and immutable for the process lifetime.
package wow

import "strings"

// Category groups the canonical directories by asset type
type Category struct {
	Name        string
	Directories []string
}

// Categories is the canonical WoW 3.3.5a patch directory structure,
// organized by asset category. Every directory appears in exactly one
// category.
var Categories = []Category{
	{
		Name:        "dbc",
		Directories: []string{"DBFilesClient"},
	},
	{
		Name: "interface",
		Directories: []string{
			"Interface/AddOns",
			"Interface/Buttons",
			"Interface/Cinematics",
			"Interface/Cursors",
			"Interface/DialogFrame",
			"Interface/FriendsFrame",
			"Interface/Glues",
			"Interface/GMSurveyUI",
			"Interface/GuildBankFrame",
			"Interface/Icons",
			"Interface/ItemTextFrame",
			"Interface/lfgframe",
			"Interface/MacroFrame",
			"Interface/Minimap",
			"Interface/PaperDollInfoFrame",
			"Interface/PetPaperDollFrame",
			"Interface/PVPFrame",
			"Interface/QuestFrame",
			"Interface/RaidFrame",
			"Interface/SpellBook",
			"Interface/Stationery",
			"Interface/TalentFrame",
			"Interface/TargetingFrame",
			"Interface/Tooltips",
			"Interface/TradeSkillFrame",
			"Interface/WorldMap",
			"Interface/WorldStateFrame",
		},
	},
	{
		Name:        "fonts",
		Directories: []string{"Fonts"},
	},
	{
		Name: "sound",
		Directories: []string{
			"Sound/Ambience",
			"Sound/Creature",
			"Sound/Doodad",
			"Sound/EmotesVocal",
			"Sound/Events",
			"Sound/Interface",
			"Sound/Item",
			"Sound/Music",
			"Sound/Spells",
		},
	},
	{
		Name: "textures",
		Directories: []string{
			"Textures/Minimap",
			"Textures/BakedNpcTextures",
		},
	},
	{
		Name: "models",
		Directories: []string{
			"Character",
			"Creature",
			"Item",
			"Spells",
		},
	},
	{
		Name: "world",
		Directories: []string{
			"World/Maps",
			"World/Minimaps",
			"World/wmo",
		},
	},
	{
		Name:        "cameras",
		Directories: []string{"Cameras"},
	},
}

// Structure is the flattened list of all canonical directories, in
// category order. These are the ONLY paths the client will scan.
var Structure = flatten()

func flatten() []string {
	var all []string
	for _, c := range Categories {
		all = append(all, c.Directories...)
	}
	return all
}

// CategoryNames returns the available category names in table order
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, c.Name)
	}
	return names
}

// ValidDirectories returns the canonical directories for the given
// category names. A nil or empty slice selects every category.
// Unknown names are skipped; callers that need to reject them should
// check against CategoryNames first.
func ValidDirectories(categories []string) []string {
	if len(categories) == 0 {
		result := make([]string, len(Structure))
		copy(result, Structure)
		return result
	}

	var result []string
	for _, name := range categories {
		for _, c := range Categories {
			if c.Name == name {
				result = append(result, c.Directories...)
				break
			}
		}
	}
	return result
}

// IsValidPath reports whether a relative path sits inside a canonical
// WoW 3.3.5a directory. Backslashes are treated as path separators so
// listings produced on Windows validate identically.
//
// A path matches only on a separator boundary: "World/Maps2/x" is not
// valid just because "World/Maps" is canonical.
func IsValidPath(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, dir := range Structure {
		if normalized == dir || strings.HasPrefix(normalized, dir+"/") {
			return true
		}
	}
	return false
}
