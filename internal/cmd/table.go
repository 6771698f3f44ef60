package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	toml "github.com/pelletier/go-toml"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/keynames/scancode"
)

// Table dumps a platform's scancode table.
type Table struct {
	PlatformFlag `embed:""`
	Format       string `help:"Output format" enum:"text,json,yaml,toml" default:"text" env:"KEYNAMES_TABLE_FORMAT"`
	ByKey        bool   `help:"List the encode direction (one canonical code per key) instead of every decodable code"`
}

type tableEntry struct {
	Code  uint32 `json:"code" yaml:"code" toml:"code"`
	Key   string `json:"key" yaml:"key" toml:"key"`
	Name  string `json:"name" yaml:"name" toml:"name"`
	Alias bool   `json:"alias,omitempty" yaml:"alias,omitempty" toml:"alias,omitempty"`
}

type tableDoc struct {
	Platform string       `json:"platform" yaml:"platform" toml:"platform"`
	Invalid  uint32       `json:"invalid" yaml:"invalid" toml:"invalid"`
	Entries  []tableEntry `json:"entries" yaml:"entries" toml:"entries"`
}

// Run is called by Kong when the table command is executed.
func (t *Table) Run(out io.Writer) error {
	n, err := t.namer()
	if err != nil {
		return err
	}
	doc := t.build(n)

	var data []byte
	switch t.Format {
	case "", "text":
		return t.renderText(out, n.platform, doc)
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(doc)
	case "toml":
		data, err = toml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported format: %s", t.Format)
	}
	if err != nil {
		return fmt.Errorf("encode %s table: %w", t.Format, err)
	}
	_, err = out.Write(data)
	return err
}

func (t *Table) build(n namer) tableDoc {
	tbl := n.table()
	pairs := tbl.Forward()
	if t.ByKey {
		pairs = tbl.Reverse()
	}
	doc := tableDoc{
		Platform: n.platform.String(),
		Invalid:  tbl.Invalid(),
		Entries:  make([]tableEntry, 0, len(pairs)),
	}
	for _, p := range pairs {
		doc.Entries = append(doc.Entries, tableEntry{
			Code:  p.Code,
			Key:   p.Key.String(),
			Name:  n.scancodeName(p.Code),
			Alias: tbl.IsAlias(p.Code),
		})
	}
	return doc
}

func (t *Table) renderText(out io.Writer, p scancode.Platform, doc tableDoc) error {
	if isTerminal(out) {
		table := tablewriter.NewWriter(out)
		table.Header("Code", "Key", "Name", "Alias")
		for _, e := range doc.Entries {
			alias := ""
			if e.Alias {
				alias = "yes"
			}
			if err := table.Append([]string{formatCode(p, e.Code), e.Key, e.Name, alias}); err != nil {
				return err
			}
		}
		return table.Render()
	}
	for _, e := range doc.Entries {
		line := formatCode(p, e.Code) + "\t" + e.Key + "\t" + e.Name
		if e.Alias {
			line += "\talias"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
