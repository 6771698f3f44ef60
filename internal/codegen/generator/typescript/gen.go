package typescript

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Alia5/keynames/internal/codegen/common"
	"github.com/Alia5/keynames/internal/codegen/meta"
)

// FileName is the module written into the output directory.
const FileName = "keynames.ts"

const moduleTmpl = `{{header}}
export const VERSION = "{{.Version}}";

export enum Key {
{{- range .Keys}}
  {{.Name}} = {{.Value}},
{{- end}}
}
{{range .Platforms}}
export const {{.Name}}Invalid = {{.Invalid}};

export const {{.Name}}Decode: ReadonlyMap<number, Key> = new Map<number, Key>([
{{- range .Decode}}
  [{{printf "0x%X" .Code}}, Key.{{.Key}}],{{if .Alias}} // alias{{end}}
{{- end}}
]);

export const {{.Name}}Encode: ReadonlyMap<Key, number> = new Map<Key, number>([
{{- range .Encode}}
  [Key.{{.Key}}, {{printf "0x%X" .Code}}],
{{- end}}
]);
{{end}}
export type Platform = {{range $i, $p := .Platforms}}{{if $i}} | {{end}}"{{$p.Name}}"{{end}};

const decoders: Record<Platform, ReadonlyMap<number, Key>> = {
{{- range .Platforms}}
  {{.Name}}: {{.Name}}Decode,
{{- end}}
};

const encoders: Record<Platform, ReadonlyMap<Key, number>> = {
{{- range .Platforms}}
  {{.Name}}: {{.Name}}Encode,
{{- end}}
};

export function decodeScancode(platform: Platform, sc: number): Key | undefined {
  return decoders[platform].get(sc);
}

export function encodeScancode(platform: Platform, key: Key): number | undefined {
  return encoders[platform].get(key);
}
`

// Generate writes the TypeScript module with every key and scancode table.
func Generate(logger *slog.Logger, outputDir string, md *meta.Metadata) error {
	path := filepath.Join(outputDir, FileName)
	logger.Debug("Generating TypeScript module", "file", path)

	funcs := template.FuncMap{
		"header": func() string { return common.FileHeader("//", "TypeScript") },
	}
	t := template.Must(template.New("module").Funcs(funcs).Parse(moduleTmpl))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := t.Execute(f, md); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
