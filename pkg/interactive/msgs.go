package interactive

// Menu actions
const (
	ActionDirectory = "Choose directory"
	ActionPattern   = "Edit pattern"
	ActionStart     = "Edit start number"
	ActionPreview   = "Preview"
	ActionExecute   = "Execute"
	ActionQuit      = "Quit"
)

// Prompt labels and messages
const (
	MsgActionPrompt    = "What next?"
	MsgDirectoryPrompt = "Directory"
	MsgPatternPrompt   = "Pattern ({:03d} pads the number, otherwise it is appended)"
	MsgStartPrompt     = "Start number"
	MsgConfirmExecute  = "Rename these files? This cannot be undone"
	MsgStateFormat     = "Directory: %s | Pattern: %s | Start: %s"
	MsgNoDirectory     = "(none)"
	MsgCancelled       = "Rename cancelled."
	MsgExecuteDone     = "Files renamed."
	MsgBye             = "Bye."

	MsgTableSource = "Current name"
	MsgTableTarget = "New name"
)
