// Package cmd holds the kong command structs that make up the templategen
// command-line surface.
package cmd

// CLI is the root command line. Generate is the default command, so plain
// `templategen` regenerates the committed table and `templategen --validate`
// checks it for drift.
type CLI struct {
	Log    LogConfig `embed:"" prefix:"log."`
	Config string    `help:"Path to a configuration file" env:"TEMPLATEGEN_CONFIG"`

	Generate  Generate      `cmd:"" default:"withargs" help:"Extract metadata from the firmware source and write the controller template table"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}

// LogConfig carries the logging flags shared by all commands.
type LogConfig struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"TEMPLATEGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"TEMPLATEGEN_LOG_FILE"`
}
