package genconfig

// Message constants
const (
	MsgShort   = "Generate a default configuration file"
	MsgLong    = "Output the default configuration, every value commented out, to stdout or write it to the user configuration file.\n\nWith --effective the configuration actually in use is printed instead, after the config file, environment and flags are applied."
	MsgExample = `  renumber gen-config                  # Output to stdout
  renumber gen-config -w               # Write to $XDG_CONFIG_HOME/renumber/config.toml
  renumber gen-config --effective      # Show the merged configuration`

	MsgFlagWrite     = "Write config to the configuration file instead of stdout"
	MsgFlagForce     = "Overwrite an existing configuration file"
	MsgFlagEffective = "Print the effective configuration"

	MsgWritten = "Wrote %s\n"
)
