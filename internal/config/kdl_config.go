package config

import (
	"fmt"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	"github.com/standardbeagle/strsim/internal/debug"
	strsimerrors "github.com/standardbeagle/strsim/internal/errors"
)

// parseKDL parses a .strsim.kdl document on top of the defaults
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	p := &kdlParser{}
	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "version":
			p.setInt(n, "version", &cfg.Version)
		case "matcher":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "algorithm":
					p.setString(cn, "matcher.algorithm", &cfg.Matcher.Algorithm)
				case "threshold":
					p.setFloat(cn, "matcher.threshold", &cfg.Matcher.Threshold)
				case "canonical":
					p.setBool(cn, "matcher.canonical", &cfg.Matcher.Canonical)
				case "max_results":
					p.setInt(cn, "matcher.max_results", &cfg.Matcher.MaxResults)
				default:
					p.unknown(cn, "matcher.")
				}
			}
		case "normalize":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "trim_space":
					p.setBool(cn, "normalize.trim_space", &cfg.Normalize.TrimSpace)
				case "split_words":
					p.setBool(cn, "normalize.split_words", &cfg.Normalize.SplitWords)
				case "fold_case":
					p.setBool(cn, "normalize.fold_case", &cfg.Normalize.FoldCase)
				case "stem":
					p.setBool(cn, "normalize.stem", &cfg.Normalize.Stem)
				case "stem_min_length":
					p.setInt(cn, "normalize.stem_min_length", &cfg.Normalize.StemMinLength)
				case "exclusions":
					p.setStrings(cn, "normalize.exclusions", &cfg.Normalize.Exclusions)
				default:
					p.unknown(cn, "normalize.")
				}
			}
		case "cache":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "phonetic_codes":
					p.setInt(cn, "cache.phonetic_codes", &cfg.Cache.PhoneticCodes)
				default:
					p.unknown(cn, "cache.")
				}
			}
		default:
			p.unknown(n, "")
		}
	}

	if err := strsimerrors.NewMultiError(p.errs).ErrorOrNil(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// kdlParser collects type errors while assigning node values
type kdlParser struct {
	errs []error
}

func (p *kdlParser) fail(field string, n *document.Node, want string) {
	got := "nothing"
	if len(n.Arguments) > 0 {
		got = fmt.Sprintf("%T", n.Arguments[0].Value)
	}
	p.errs = append(p.errs, strsimerrors.NewConfigError(field, "", fmt.Errorf("expected %s, got %s", want, got)))
}

func (p *kdlParser) setString(n *document.Node, field string, dst *string) {
	if s, ok := firstStringArg(n); ok {
		*dst = s
		return
	}
	p.fail(field, n, "string")
}

func (p *kdlParser) setInt(n *document.Node, field string, dst *int) {
	if v, ok := firstIntArg(n); ok {
		*dst = v
		return
	}
	p.fail(field, n, "integer")
}

func (p *kdlParser) setFloat(n *document.Node, field string, dst *float64) {
	if v, ok := firstFloatArg(n); ok {
		*dst = v
		return
	}
	p.fail(field, n, "number")
}

func (p *kdlParser) setBool(n *document.Node, field string, dst *bool) {
	if b, ok := firstBoolArg(n); ok {
		*dst = b
		return
	}
	p.fail(field, n, "boolean")
}

func (p *kdlParser) setStrings(n *document.Node, field string, dst *[]string) {
	if v, ok := collectStringArgs(n); ok {
		*dst = v
		return
	}
	for _, a := range n.Arguments {
		if _, isString := a.Value.(string); !isString {
			p.errs = append(p.errs, strsimerrors.NewConfigError(field, "",
				fmt.Errorf("expected strings, got %T", a.Value)))
			return
		}
	}
}

func (p *kdlParser) unknown(n *document.Node, prefix string) {
	debug.LogConfig("ignoring unknown KDL node %s%s\n", prefix, nodeName(n))
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// collectStringArgs accepts inline arguments (exclusions "a" "b") or a
// block of child nodes (exclusions { "a"; "b" }). It fails on the first
// inline argument that is not a string.
func collectStringArgs(n *document.Node) ([]string, bool) {
	if n == nil {
		return nil, true
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		s, ok := a.Value.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}

	if len(out) == 0 && len(n.Children) > 0 {
		for _, child := range n.Children {
			if name := nodeName(child); name != "" {
				out = append(out, name)
			}
		}
	}
	return out, true
}
