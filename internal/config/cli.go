// Package config defines the beangen command line. Every flag can also be
// set through the environment or a JSON, YAML or TOML configuration file.
package config

import "github.com/Alia5/beangen/internal/cmd"

type CLI struct {
	Config string  `help:"Configuration file to load before the default locations" env:"BEANGEN_CONFIG" type:"path"`
	Log    cmd.Log `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" help:"Generate bean classes from state declarations"`
	Check     cmd.Check         `cmd:"" help:"Verify generated bean classes are up to date"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
	Version   cmd.Version       `cmd:"" help:"Print the beangen version"`
}
