package interactive

// Message constants
const (
	MsgShort = "Rename files with a custom pattern, step by step"
	MsgLong  = `Start an interactive session to rename the files of a directory with a
pattern such as IMG_{:03d} and a start number.

Choose the directory, edit the pattern and start number, then preview the
renames. Executing asks for confirmation and needs a preview of the
current settings. The initial pattern and start number come from the
configuration file unless given as flags.

See 'renumber help patterns' for the pattern syntax.`
	MsgExample = `  renumber interactive                         # Start with an empty directory
  renumber interactive ~/Pictures/trip         # Start in a directory
  renumber interactive -p 'trip_{:03d}' -s 10  # Custom initial pattern`

	MsgFlagPattern = "Initial naming pattern"
	MsgFlagStart   = "Initial start number"

	MsgErrNoTerminal = "interactive mode needs a terminal"
)
