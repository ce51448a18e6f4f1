package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads the textual graph form produced by Graph.String. Blank
// lines and lines starting with # are ignored; indentation is not
// significant. Values are assigned ids in textual order, so a graph that
// numbers its values sequentially round-trips to the same text.
func Parse(src string) (*Graph, error) {
	p := &parser{
		graph:  New(),
		values: make(map[string]*Value),
	}
	for lineno, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := p.consume(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno+1, err)
		}
	}
	if !p.done {
		return nil, fmt.Errorf("unexpected end of input: missing return")
	}
	return p.graph, nil
}

type parser struct {
	graph  *Graph
	values map[string]*Value
	blocks []*Block // innermost last; empty until the header is seen
	done   bool
}

func (p *parser) consume(line string) error {
	switch {
	case p.done:
		return fmt.Errorf("content after return: %q", line)
	case len(p.blocks) == 0:
		return p.header(line)
	case line == "}":
		return p.closeBlock()
	case strings.HasPrefix(line, "-> ("):
		return p.blockOutputs(line)
	case strings.HasPrefix(line, "return ("):
		return p.graphOutputs(line)
	default:
		return p.node(line)
	}
}

func (p *parser) header(line string) error {
	inner, ok := cutAround(line, "graph(", "):")
	if !ok {
		return fmt.Errorf("expected graph header, got %q", line)
	}
	for _, field := range splitList(inner) {
		name, typ, err := parseTypedName(field)
		if err != nil {
			return err
		}
		if _, dup := p.values[name]; dup {
			return fmt.Errorf("duplicate value %s", name)
		}
		p.values[name] = p.graph.AddInput(typ)
	}
	p.blocks = append(p.blocks, p.graph.Block())
	return nil
}

func (p *parser) node(line string) error {
	openBlock := strings.HasSuffix(line, "{")
	if openBlock {
		line = strings.TrimSpace(strings.TrimSuffix(line, "{"))
	}

	lhs, rhs, hasOutputs := strings.Cut(line, " = ")
	if !hasOutputs {
		lhs, rhs = "", line
	}

	open := strings.Index(rhs, "(")
	if open < 0 || !strings.HasSuffix(rhs, ")") {
		return fmt.Errorf("malformed node %q", line)
	}
	head, args := rhs[:open], rhs[open+1:len(rhs)-1]

	var ival int64
	if i := strings.Index(head, "["); i >= 0 {
		attr, ok := cutAround(head[i:], "[", "]")
		if !ok {
			return fmt.Errorf("malformed attribute in %q", head)
		}
		key, val, ok := strings.Cut(attr, "=")
		if !ok || key != "value" {
			return fmt.Errorf("unsupported attribute %q", attr)
		}
		v, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("attribute value %q: %w", val, err)
		}
		ival = v
		head = head[:i]
	}
	if head == "" {
		return fmt.Errorf("missing node kind in %q", line)
	}

	n := p.graph.NewNode(Kind(head), 0)
	n.ival = ival
	for _, arg := range splitList(args) {
		v, ok := p.values[arg]
		if !ok {
			return fmt.Errorf("undefined value %s", arg)
		}
		n.AddInput(v)
	}
	for _, field := range splitList(lhs) {
		name, typ, err := parseTypedName(field)
		if err != nil {
			return err
		}
		if _, dup := p.values[name]; dup {
			return fmt.Errorf("duplicate value %s", name)
		}
		p.values[name] = n.AddOutput(typ)
	}
	p.current().Append(n)

	if openBlock {
		p.blocks = append(p.blocks, n.AddBlock())
	}
	return nil
}

func (p *parser) closeBlock() error {
	if len(p.blocks) < 2 {
		return fmt.Errorf("unmatched }")
	}
	b := p.current()
	owner := b.Owner()
	if got, want := len(b.Outputs()), len(owner.Outputs()); got != want {
		return fmt.Errorf("%s block yields %d values, node declares %d outputs", owner.Kind(), got, want)
	}
	p.blocks = p.blocks[:len(p.blocks)-1]
	return nil
}

func (p *parser) blockOutputs(line string) error {
	if len(p.blocks) < 2 {
		return fmt.Errorf("-> outside nested block")
	}
	return p.registerOutputs(line, "-> (")
}

func (p *parser) graphOutputs(line string) error {
	if len(p.blocks) != 1 {
		return fmt.Errorf("return inside nested block")
	}
	if err := p.registerOutputs(line, "return ("); err != nil {
		return err
	}
	p.done = true
	return nil
}

func (p *parser) registerOutputs(line, prefix string) error {
	inner, ok := cutAround(line, prefix, ")")
	if !ok {
		return fmt.Errorf("malformed %q", line)
	}
	for _, name := range splitList(inner) {
		v, ok := p.values[name]
		if !ok {
			return fmt.Errorf("undefined value %s", name)
		}
		p.current().RegisterOutput(v)
	}
	return nil
}

func (p *parser) current() *Block { return p.blocks[len(p.blocks)-1] }

// parseTypedName parses "%name : Type".
func parseTypedName(field string) (string, Type, error) {
	name, typeStr, ok := strings.Cut(field, " : ")
	if !ok || !strings.HasPrefix(name, "%") {
		return "", nil, fmt.Errorf("expected %%name : type, got %q", field)
	}
	typ, err := parseType(strings.TrimSpace(typeStr))
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSpace(name), typ, nil
}

func parseType(s string) (Type, error) {
	switch {
	case s == "Tensor":
		return Tensor(), nil
	case s == "Tensor(zero)":
		return TensorUndefined(true), nil
	case s == "Tensor(nonzero)":
		return TensorUndefined(false), nil
	case strings.HasSuffix(s, "[]"):
		elem, err := parseType(strings.TrimSuffix(s, "[]"))
		if err != nil {
			return nil, err
		}
		return ListOf(elem), nil
	case s == "int", s == "float", s == "bool":
		return ScalarType(s), nil
	default:
		return nil, fmt.Errorf("unknown type %q", s)
	}
}

// splitList splits a comma-separated list, returning nil for an empty
// one. List entries never contain commas.
func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// cutAround returns the part of s between prefix and suffix, requiring
// both to be present.
func cutAround(s, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, suffix) {
		return "", false
	}
	return s[len(prefix) : len(s)-len(suffix)], true
}
