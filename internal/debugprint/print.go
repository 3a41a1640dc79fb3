package debugprint

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/yetsing/dai/internal/ast"
)

// marshal renders n's JSON-able shape through encoding/json, compact (no
// indentation — that's pretty.Pretty's job downstream).
func marshal(n ast.Node) ([]byte, error) {
	b, err := json.Marshal(Convert(n))
	if err != nil {
		return nil, fmt.Errorf("debugprint: marshal node: %w", err)
	}
	return b, nil
}

// Plain renders n as indented, uncoloured JSON — ast_debug_string(node,
// recursive) without ANSI styling.
func Plain(n ast.Node) ([]byte, error) {
	b, err := marshal(n)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(b), nil
}

// Colored renders n as indented JSON with the default ANSI key/value
// colouring, the "colourized AST" requirement, implemented as colourized
// JSON rather than a bespoke tree writer.
func Colored(n ast.Node) ([]byte, error) {
	b, err := marshal(n)
	if err != nil {
		return nil, err
	}
	return pretty.Color(pretty.Pretty(b), nil), nil
}

// Query runs a gjson path against n's plain JSON rendering, letting a
// caller pull one subtree (e.g. "statements.0.expression.operator")
// without re-walking the AST in Go.
func Query(n ast.Node, path string) (string, error) {
	b, err := marshal(n)
	if err != nil {
		return "", err
	}
	result := gjson.GetBytes(b, path)
	if !result.Exists() {
		return "", fmt.Errorf("debugprint: path %q matched nothing", path)
	}
	return result.Raw, nil
}
