package cmd

import (
	"log/slog"

	"github.com/Alia5/keynames/internal/codegen/generator"
)

type Codegen struct {
	Output string `help:"Output directory; each language gets a subdirectory" default:"./gen" env:"KEYNAMES_CODEGEN_OUTPUT"`
	Lang   string `help:"Target language: c, typescript, or 'all'" default:"all" enum:"c,typescript,all" env:"KEYNAMES_CODEGEN_LANG"`
}

// Run is called by Kong when the codegen command is executed.
func (c *Codegen) Run(logger *slog.Logger) error {
	logger.Info("Starting table code generation", "output", c.Output, "lang", c.Lang)

	gen := generator.New(c.Output, logger)
	if c.Lang == "all" {
		return gen.GenAll()
	}
	return gen.GenerateLang(c.Lang)
}
