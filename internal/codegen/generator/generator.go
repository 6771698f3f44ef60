package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	cgen "github.com/Alia5/keynames/internal/codegen/generator/c"
	"github.com/Alia5/keynames/internal/codegen/generator/typescript"
	"github.com/Alia5/keynames/internal/codegen/common"
	"github.com/Alia5/keynames/internal/codegen/meta"
)

type Generator struct {
	outputDir string
	logger    *slog.Logger
}

type LanguageGenerator func(logger *slog.Logger, outputDir string, md *meta.Metadata) error

var generators = map[string]LanguageGenerator{
	"c":          cgen.Generate,
	"typescript": typescript.Generate,
}

// Languages returns the supported target languages, sorted.
func Languages() []string {
	langs := make([]string, 0, len(generators))
	for k := range generators {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}

func New(outputDir string, logger *slog.Logger) *Generator {
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
	}
}

func (g *Generator) GenAll() error {
	for _, lang := range Languages() {
		if err := g.GenerateLang(lang); err != nil {
			return fmt.Errorf("generate %s tables: %w", lang, err)
		}
	}
	return nil
}

func (g *Generator) GenerateLang(lang string) error {
	gen, ok := generators[lang]
	if !ok {
		return fmt.Errorf("unsupported language '%s' (supported: %v)", lang, Languages())
	}

	g.logger.Info("Generating scancode tables", "language", lang)

	version, err := common.GetVersion()
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}
	md := meta.Build(version)

	outputPath := filepath.Join(g.outputDir, lang)
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("failed to create %s output directory: %w", lang, err)
	}

	if err := gen(g.logger, outputPath, md); err != nil {
		return err
	}

	g.logger.Info("Table generation complete", "language", lang, "output", outputPath)
	return nil
}
