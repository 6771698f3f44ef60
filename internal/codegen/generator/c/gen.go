package cgen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Alia5/keynames/internal/codegen/common"
	"github.com/Alia5/keynames/internal/codegen/meta"
)

// FileName is the header written into the output directory.
const FileName = "keynames.h"

const headerTmpl = `{{header}}
#ifndef KEYNAMES_H
#define KEYNAMES_H

#include <stdint.h>

#define KEYNAMES_VERSION "{{.Version}}"
#define KEYNAMES_VERSION_MAJOR {{major}}
#define KEYNAMES_VERSION_MINOR {{minor}}
#define KEYNAMES_VERSION_PATCH {{patch}}

/* ========================================================================
 * Logical keys
 * ======================================================================== */
typedef enum {
{{- range .Keys}}
    KEYNAMES_KEY_{{snake .Name}} = {{.Value}},
{{- end}}
} keynames_key_t;

typedef struct {
    uint32_t code;
    uint8_t key;
} keynames_entry_t;
{{range .Platforms}}
/* ========================================================================
 * {{.Name}} scancodes
 * ======================================================================== */
#define KEYNAMES_{{snake .Name}}_INVALID {{printf "0x%X" .Invalid}}u
#define KEYNAMES_{{snake .Name}}_DECODE_LEN {{len .Decode}}
#define KEYNAMES_{{snake .Name}}_ENCODE_LEN {{len .Encode}}

/* Sorted by code. Aliases decode but are never produced by encoding. */
static const keynames_entry_t keynames_{{.Name}}_decode[] = {
{{- range .Decode}}
    { {{printf "0x%X" .Code}}u, KEYNAMES_KEY_{{snake .Key}} },{{if .Alias}} /* alias */{{end}}
{{- end}}
};

/* Sorted by key. */
static const keynames_entry_t keynames_{{.Name}}_encode[] = {
{{- range .Encode}}
    { {{printf "0x%X" .Code}}u, KEYNAMES_KEY_{{snake .Key}} },
{{- end}}
};
{{end}}
#endif /* KEYNAMES_H */
`

func tplFuncs(md *meta.Metadata) template.FuncMap {
	major, minor, patch := common.ParseVersion(md.Version)
	return template.FuncMap{
		"header": func() string { return strings.TrimSuffix(common.FileHeader("//", "C"), "\n") },
		"snake":  common.ToUpperSnake,
		"major":  func() int { return major },
		"minor":  func() int { return minor },
		"patch":  func() int { return patch },
	}
}

// Generate writes the C header with every key and scancode table.
func Generate(logger *slog.Logger, outputDir string, md *meta.Metadata) error {
	path := filepath.Join(outputDir, FileName)
	logger.Debug("Generating C header", "file", path)

	t := template.Must(template.New("header").Funcs(tplFuncs(md)).Parse(headerTmpl))
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
