// Package config declares the command line, environment and config file
// surface of the keynames command.
package config

import "github.com/Alia5/keynames/internal/cmd"

// Log configures logging for every command.
type Log struct {
	Level   string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"KEYNAMES_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of stdout/stderr" env:"KEYNAMES_LOG_FILE"`
	RawFile string `help:"Dump raw Wayland wire traffic to this file" env:"KEYNAMES_LOG_RAW_FILE"`
}

// CLI is the root kong command.
type CLI struct {
	Config string `help:"Config file (JSON, YAML or TOML)" env:"KEYNAMES_CONFIG" placeholder:"PATH"`
	Log    Log    `embed:"" prefix:"log."`

	Decode  cmd.Decode        `cmd:"" help:"Decode native scancodes to keys"`
	Encode  cmd.Encode        `cmd:"" help:"Encode keys to native scancodes"`
	Name    cmd.Name          `cmd:"" help:"Print the display name of a key or scancode"`
	Mods    cmd.Mods          `cmd:"" help:"Print a modifier prefix such as 'Ctrl + Shift'"`
	Table   cmd.Table         `cmd:"" help:"Dump a platform's scancode table"`
	Check   cmd.Check         `cmd:"" help:"Validate every scancode table"`
	Keymap  cmd.Keymap        `cmd:"" help:"Print native names from the session keyboard layout (Linux)"`
	Codegen cmd.Codegen       `cmd:"" help:"Generate scancode tables for C and TypeScript"`
	Cfg     cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
