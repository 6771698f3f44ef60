package xkb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoSymbols is returned for keymaps without an xkb_symbols section.
var ErrNoSymbols = errors.New("xkb: keymap has no xkb_symbols section")

type parser struct {
	toks []token
	pos  int

	keycodes map[string]uint32
	aliases  map[string]string
	symbols  map[string][]Keysym
	seenSyms bool
}

// ParseKeymap parses a keymap in the XKB text v1 format, as produced by
// xkb_keymap_get_as_string and sent by wl_keyboard.keymap. Only the
// xkb_keycodes and xkb_symbols sections are interpreted; the first group
// of every key is kept.
func ParseKeymap(src []byte) (*Keymap, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{
		toks:     toks,
		keycodes: map[string]uint32{},
		aliases:  map[string]string{},
		symbols:  map[string][]Keysym{},
	}
	if err := p.parseFile(); err != nil {
		return nil, err
	}
	if !p.seenSyms {
		return nil, ErrNoSymbols
	}

	m := &Keymap{
		levels: make(map[uint32][]Keysym, len(p.symbols)),
		names:  make(map[uint32]string, len(p.keycodes)),
	}
	for name, kc := range p.keycodes {
		m.names[kc] = name
	}
	for name, syms := range p.symbols {
		kc, ok := p.resolve(name)
		if !ok {
			continue
		}
		m.levels[kc] = syms
	}
	return m, nil
}

func (p *parser) resolve(name string) (uint32, bool) {
	for i := 0; i < 8; i++ {
		if kc, ok := p.keycodes[name]; ok {
			return kc, true
		}
		target, ok := p.aliases[name]
		if !ok {
			return 0, false
		}
		name = target
	}
	return 0, false
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &ParseError{Line: t.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(text string) error {
	t := p.next()
	if !t.is(tokPunct, text) {
		return p.errorf(t, "expected %q, got %s", text, t)
	}
	return nil
}

func (p *parser) skipSemicolon() {
	if p.peek().is(tokPunct, ";") {
		p.next()
	}
}

func (p *parser) parseFile() error {
	if p.peek().is(tokWord, "xkb_keymap") {
		p.next()
		if p.peek().kind == tokString {
			p.next()
		}
		if err := p.expect("{"); err != nil {
			return err
		}
		for !p.peek().is(tokPunct, "}") {
			if p.peek().kind == tokEOF {
				return p.errorf(p.peek(), "unexpected end of keymap")
			}
			if err := p.parseSection(); err != nil {
				return err
			}
		}
		p.next()
		p.skipSemicolon()
	}
	for p.peek().kind != tokEOF {
		if err := p.parseSection(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseSection() error {
	head := p.next()
	if head.kind != tokWord || !strings.HasPrefix(head.text, "xkb_") {
		return p.errorf(head, "expected section, got %s", head)
	}
	if p.peek().kind == tokString {
		p.next()
	}
	if err := p.expect("{"); err != nil {
		return err
	}
	for !p.peek().is(tokPunct, "}") {
		stmt, err := p.statement()
		if err != nil {
			return err
		}
		switch head.text {
		case "xkb_keycodes":
			p.keycodeStatement(stmt)
		case "xkb_symbols":
			if err := p.symbolsStatement(stmt); err != nil {
				return err
			}
		}
	}
	p.next()
	p.skipSemicolon()
	if head.text == "xkb_symbols" {
		p.seenSyms = true
	}
	return nil
}

// statement returns the tokens up to the next top level ';', which is consumed.
func (p *parser) statement() ([]token, error) {
	var out []token
	depth := 0
	for {
		t := p.peek()
		switch {
		case t.kind == tokEOF:
			return nil, p.errorf(t, "unexpected end of keymap")
		case t.kind == tokPunct && (t.text == "{" || t.text == "[" || t.text == "("):
			depth++
		case t.kind == tokPunct && (t.text == "}" || t.text == "]" || t.text == ")"):
			if depth == 0 {
				if t.text != "}" {
					return nil, p.errorf(t, "unbalanced %q", t.text)
				}
				// Last statement of a block without a trailing ';'.
				return out, nil
			}
			depth--
		case t.kind == tokPunct && t.text == ";" && depth == 0:
			p.next()
			return out, nil
		}
		out = append(out, p.next())
	}
}

func (p *parser) keycodeStatement(stmt []token) {
	switch {
	case len(stmt) == 3 && stmt[0].kind == tokKeyName && stmt[1].is(tokPunct, "=") && stmt[2].kind == tokWord:
		kc, err := strconv.ParseUint(stmt[2].text, 0, 32)
		if err == nil {
			p.keycodes[stmt[0].text] = uint32(kc)
		}
	case len(stmt) == 4 && stmt[0].is(tokWord, "alias") && stmt[1].kind == tokKeyName &&
		stmt[2].is(tokPunct, "=") && stmt[3].kind == tokKeyName:
		p.aliases[stmt[1].text] = stmt[3].text
	}
}

func (p *parser) symbolsStatement(stmt []token) error {
	if len(stmt) > 0 && stmt[0].kind == tokWord {
		switch stmt[0].text {
		case "augment", "override", "replace":
			stmt = stmt[1:]
		}
	}
	if len(stmt) < 4 || !stmt[0].is(tokWord, "key") || stmt[1].kind != tokKeyName {
		return nil
	}
	if !stmt[2].is(tokPunct, "{") || !stmt[len(stmt)-1].is(tokPunct, "}") {
		return p.errorf(stmt[1], "malformed key <%s>", stmt[1].text)
	}
	syms, err := p.group1(stmt[3 : len(stmt)-1])
	if err != nil {
		return err
	}
	if syms != nil {
		p.symbols[stmt[1].text] = syms
	}
	return nil
}

// group1 extracts the first group's keysym list from the body of a key
// statement. Bare lists are numbered groups in order; symbols[GroupN]= lists
// name their group.
func (p *parser) group1(body []token) ([]Keysym, error) {
	bare := 0
	for _, entry := range splitTopLevel(body) {
		if len(entry) == 0 {
			continue
		}
		if entry[0].is(tokPunct, "[") {
			bare++
			if bare == 1 {
				return p.symList(entry)
			}
			continue
		}
		if !entry[0].is(tokWord, "symbols") {
			continue
		}
		eq := -1
		for i, t := range entry {
			if t.is(tokPunct, "=") {
				eq = i
				break
			}
		}
		if eq < 0 || eq+1 >= len(entry) {
			return nil, p.errorf(entry[0], "malformed symbols entry")
		}
		if groupIndex(entry[1:eq]) == 1 {
			return p.symList(entry[eq+1:])
		}
	}
	return nil, nil
}

func groupIndex(sel []token) int {
	if len(sel) != 3 || !sel[0].is(tokPunct, "[") || !sel[2].is(tokPunct, "]") {
		return 0
	}
	s := strings.TrimPrefix(strings.ToLower(sel[1].text), "group")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func (p *parser) symList(list []token) ([]Keysym, error) {
	if len(list) < 2 || !list[0].is(tokPunct, "[") || !list[len(list)-1].is(tokPunct, "]") {
		return nil, p.errorf(list[0], "expected keysym list")
	}
	var out []Keysym
	for _, item := range splitTopLevel(list[1 : len(list)-1]) {
		word, ok := levelSym(item)
		if !ok {
			return nil, p.errorf(list[0], "malformed keysym list")
		}
		ks, ok := KeysymFromName(word)
		if !ok {
			ks = NoSymbol
		}
		out = append(out, ks)
	}
	return out, nil
}

// levelSym returns the keysym word naming one level. A braced level such as
// {s, t} produces several keysyms at once; its first one stands for the level.
func levelSym(item []token) (string, bool) {
	if len(item) == 1 && item[0].kind == tokWord {
		return item[0].text, true
	}
	if len(item) < 2 || !item[0].is(tokPunct, "{") || !item[len(item)-1].is(tokPunct, "}") {
		return "", false
	}
	inner := splitTopLevel(item[1 : len(item)-1])
	if len(inner) == 0 {
		return "NoSymbol", true
	}
	for _, sym := range inner {
		if len(sym) != 1 || sym[0].kind != tokWord {
			return "", false
		}
	}
	return inner[0][0].text, true
}

func splitTopLevel(toks []token) [][]token {
	var out [][]token
	depth, start := 0, 0
	for i, t := range toks {
		if t.kind != tokPunct {
			continue
		}
		switch t.text {
		case "{", "[", "(":
			depth++
		case "}", "]", ")":
			depth--
		case ",":
			if depth == 0 {
				out = append(out, toks[start:i])
				start = i + 1
			}
		}
	}
	if start < len(toks) {
		out = append(out, toks[start:])
	}
	return out
}
