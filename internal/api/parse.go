package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// placeholderCallee is prefixed to the argument text so it parses as a call.
const placeholderCallee = "__callee__"

// requiredToken stands in for RequiredPlaceholder while parsing, so values
// produced by earlier conversions (e.g. nested calls) stay parseable.
const requiredToken = "__required_placeholder__"

// ParseArgs binds the argument-list text of a call to the given schema.
//
// argsText must start with "(" and end with ")". Positional arguments are
// bound to the schema's names in order; *args and **kwargs are captured
// under StarKey and DoubleStarKey. A catch-all schema captures the whole
// inner text verbatim.
func ParseArgs(log zerolog.Logger, schema *Schema, callName, argsText string) (*Call, error) {
	if len(argsText) < 2 || argsText[0] != '(' || argsText[len(argsText)-1] != ')' {
		return nil, fmt.Errorf(`%w: %q should start with "(" and end with ")"`, ErrFormat, argsText)
	}

	src := []byte(placeholderCallee + strings.ReplaceAll(argsText, RequiredPlaceholder, requiredToken))

	// A parser per call keeps concurrent conversions independent.
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, argsText, err)
	}
	defer tree.Close()

	args, err := argumentNodes(tree, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, argsText)
	}

	call := &Call{Name: callName, Args: newArgs()}

	if name, ok := schema.CatchAll(); ok {
		call.Args.set(name, argsText[1:len(argsText)-1])
		return call, nil
	}

	var (
		positional []*sitter.Node
		keywords   []*sitter.Node
	)

	for _, arg := range args {
		switch arg.Type() {
		case "keyword_argument", "dictionary_splat":
			keywords = append(keywords, arg)
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) > schema.Len() {
		return nil, fmt.Errorf("%w: %s takes %d positional arguments but %d were given",
			ErrArity, callName, schema.Len(), len(positional))
	}

	names := schema.Names()
	next := 0

	for _, arg := range positional {
		if arg.Type() == "list_splat" {
			value := nodeText(arg.NamedChild(0), src)
			log.Debug().Str("call", callName).Str("value", value).Msg("found *args")
			call.Args.set(StarKey, value)

			continue
		}

		call.Args.set(names[next], nodeText(arg, src))
		next++
	}

	for _, kw := range keywords {
		if kw.Type() == "dictionary_splat" {
			value := nodeText(kw.NamedChild(0), src)
			log.Info().Str("call", callName).Str("value", value).Msg("found **kwargs")
			call.Args.set(DoubleStarKey, value)

			continue
		}

		call.Args.set(nodeText(kw.ChildByFieldName("name"), src), nodeText(kw.ChildByFieldName("value"), src))
	}

	return call, nil
}

// argumentNodes checks that src is exactly one call of the placeholder
// callee and returns its argument nodes, comments excluded.
func argumentNodes(tree *sitter.Tree, src []byte) ([]*sitter.Node, error) {
	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, fmt.Errorf("%w: syntax error", ErrParse)
	}

	if root.NamedChildCount() != 1 {
		return nil, fmt.Errorf("%w: not a single call expression", ErrParse)
	}

	stmt := root.NamedChild(0)
	if stmt.Type() != "expression_statement" || stmt.NamedChildCount() != 1 {
		return nil, fmt.Errorf("%w: not a call expression", ErrParse)
	}

	call := stmt.NamedChild(0)
	if call.Type() != "call" {
		return nil, fmt.Errorf("%w: not a call expression", ErrParse)
	}

	callee := call.ChildByFieldName("function")
	if callee == nil || callee.Type() != "identifier" || callee.Content(src) != placeholderCallee {
		return nil, fmt.Errorf("%w: argument text does not form a single argument list", ErrParse)
	}

	list := call.ChildByFieldName("arguments")
	if list == nil {
		return nil, fmt.Errorf("%w: missing argument list", ErrParse)
	}

	// f(x for x in xs) carries a bare generator expression as its only argument.
	if list.Type() == "generator_expression" {
		return []*sitter.Node{list}, nil
	}

	var nodes []*sitter.Node

	for i := range int(list.NamedChildCount()) {
		child := list.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}

		nodes = append(nodes, child)
	}

	return nodes, nil
}

func nodeText(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}

	text := n.Content(src)
	if n.Type() == "generator_expression" {
		text = strings.TrimSuffix(strings.TrimPrefix(text, "("), ")")
	}

	return strings.ReplaceAll(strings.TrimSpace(text), requiredToken, RequiredPlaceholder)
}
