// Package toml implements the small TOML subset the config file uses:
// tables, string/integer/boolean values, and comments. It is not a
// general TOML implementation.
package toml

import (
	"fmt"
	"strconv"
	"strings"
)

type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse decodes data into nested string-keyed maps. A table header selects
// the map that subsequent keys are stored in.
func Parse(data string) (map[string]any, error) {
	p := &parser{root: make(map[string]any)}
	p.current = p.root
	if err := p.parse(data); err != nil {
		return nil, err
	}
	return p.root, nil
}

type parser struct {
	lineNum int
	root    map[string]any
	current map[string]any
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.lineNum, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parse(data string) error {
	for i, raw := range strings.Split(data, "\n") {
		p.lineNum = i + 1
		line := strings.TrimSpace(stripComment(raw))
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "["):
			if err := p.parseTable(line); err != nil {
				return err
			}
		case strings.Contains(line, "="):
			if err := p.parseKeyValue(line); err != nil {
				return err
			}
		default:
			return p.errorf("invalid syntax")
		}
	}
	return nil
}

// stripComment drops a trailing # comment, respecting quoted strings.
func stripComment(line string) string {
	inString := false
	escape := false
	for i, r := range line {
		switch {
		case escape:
			escape = false
		case r == '\\' && inString:
			escape = true
		case r == '"':
			inString = !inString
		case r == '#' && !inString:
			return line[:i]
		}
	}
	return line
}

func (p *parser) parseTable(line string) error {
	if !strings.HasSuffix(line, "]") {
		return p.errorf("unterminated table header")
	}
	name := strings.TrimSpace(line[1 : len(line)-1])
	if name == "" {
		return p.errorf("empty table name")
	}
	p.current = p.root
	for _, part := range strings.Split(name, ".") {
		part = strings.TrimSpace(part)
		if part == "" {
			return p.errorf("empty table name")
		}
		next, ok := p.current[part]
		if !ok {
			table := make(map[string]any)
			p.current[part] = table
			p.current = table
			continue
		}
		table, ok := next.(map[string]any)
		if !ok {
			return p.errorf("%q is not a table", part)
		}
		p.current = table
	}
	return nil
}

func (p *parser) parseKeyValue(line string) error {
	key, value, _ := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return p.errorf("empty key")
	}
	if _, exists := p.current[key]; exists {
		return p.errorf("duplicate key %q", key)
	}
	parsed, err := p.parseValue(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	p.current[key] = parsed
	return nil
}

func (p *parser) parseValue(value string) (any, error) {
	switch {
	case value == "":
		return nil, p.errorf("missing value")
	case value == "true":
		return true, nil
	case value == "false":
		return false, nil
	case strings.HasPrefix(value, `"`):
		return p.parseString(value)
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	return nil, p.errorf("unrecognized value %s", value)
}

func (p *parser) parseString(value string) (string, error) {
	if len(value) < 2 || !strings.HasSuffix(value, `"`) {
		return "", p.errorf("unterminated string")
	}
	var b strings.Builder
	escape := false
	for _, r := range value[1 : len(value)-1] {
		if escape {
			switch r {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case '"', '\\':
				b.WriteRune(r)
			default:
				return "", p.errorf(`unknown escape \%c`, r)
			}
			escape = false
			continue
		}
		if r == '\\' {
			escape = true
			continue
		}
		b.WriteRune(r)
	}
	if escape {
		return "", p.errorf("trailing backslash in string")
	}
	return b.String(), nil
}
