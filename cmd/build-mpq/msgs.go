package main

// Short messages (one-liners)
const (
	MsgRootShort = "Build and validate WoW 3.3.5a client patch MPQ files"
	MsgRootLong = `build-mpq prepares a staging directory matching the canonical WoW 3.3.5a
client layout, packages it into an MPQ archive using mpqcli, and validates
that an existing archive only contains files the client will actually load.`

	MsgCreateShort = "Create a new WoW 3.3.5a patch staging directory structure"
	MsgCreateLong = `Create the canonical WoW 3.3.5a directory structure for patch files.

By default every category is created. Pass one or more category flags to
create a partial staging area instead. A README.txt describing the layout
is written at the staging root; it is excluded from packaging.`
	MsgCreateExample = `  # Create full structure (all categories)
  build-mpq create ./my-patch

  # Create only Interface directories
  build-mpq create ./ui-patch --interface

  # Create multiple categories
  build-mpq create ./custom-patch --interface --sound --dbc`

	MsgPackageShort = "Package a staging area into an MPQ file"
	MsgPackageLong = `Create an MPQ file from the staging directory using mpqcli.

Symbolic links inside the staging area are dereferenced by default: the
tree is materialized into a temporary copy where every entry is a real
file (hardlinked when possible, copied otherwise), and broken or cyclic
links are skipped with a warning. Use --no-dereference to hand the tree
to mpqcli as-is.`
	MsgPackageExample = `  # Package the staging area into an MPQ
  build-mpq package patch-Z.MPQ patch-Z.mpq

  # Keep symlinks as-is
  build-mpq package patch-Z.MPQ patch-Z.mpq --no-dereference`

	MsgValidateShort = "Validate an MPQ file structure"
	MsgValidateLong = `Check that all files in the MPQ are in valid WoW 3.3.5a directories.

Files outside the canonical layout are never loaded by the client. The
command lists every misplaced file and exits non-zero when any is found.`
	MsgValidateExample = `  # Validate the MPQ structure
  build-mpq validate patch-Z.mpq

  # Show the verdict for every file
  build-mpq validate patch-Z.mpq --files`

	MsgTopicsShort     = "Display documentation topics"
	MsgTopicsLong      = "Display additional documentation beyond command help, rendered for the terminal."
	MsgTopicsAvailable = "Available topics:"

	MsgVersionShort = "Print version information"

	// Flag help
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagForce         = "Force recreation if staging area already exists"
	MsgFlagCompression   = "Compression method: z=zlib, b=bzip2, n=none"
	MsgFlagNoDereference = "Do not dereference symbolic links before packaging"
	MsgFlagFiles         = "Show the validation verdict for every file"
)

// categoryFlagHelp maps category names to their flag descriptions
var categoryFlagHelp = map[string]string{
	"dbc":       "Create DBC directories (DBFilesClient/)",
	"interface": "Create Interface directories (UI, icons, addons)",
	"fonts":     "Create Fonts directory",
	"sound":     "Create Sound directories (music, effects, voices)",
	"textures":  "Create Textures directories (minimaps, NPCs)",
	"models":    "Create model directories (Character, Creature, Item, Spells)",
	"world":     "Create World directories (maps, WMO)",
	"cameras":   "Create Cameras directory",
}
