package cli

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
	MsgFlagConfig  = "Configuration file (default $XDG_CONFIG_HOME/renumber/config.toml)"
	MsgFlagCase    = "File name case sensitivity: auto, sensitive or insensitive"
)
