package convert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"op-converter/internal/mapping"
)

// ErrSyntax is returned for scripts tree-sitter cannot parse cleanly.
var ErrSyntax = errors.New("script has syntax errors")

// ConvertScript rewrites every mapped call of a Python script.
// Calls that fail to convert keep their original text and are reported
// as unconverted; calls the registry does not know are left alone.
func (c *Converter) ConvertScript(ctx context.Context, src []byte) (*Result, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w at %s", ErrSyntax, firstError(root))
	}

	s := &scriptRewriter{conv: c, src: src, result: &Result{SourceLines: countLines(src)}}
	s.result.Output = s.rewrite(root)

	c.log.Info().
		Int("calls", len(s.result.Outcomes)).
		Int("converted", s.result.Converted()).
		Msg("script converted")

	return s.result, nil
}

type scriptRewriter struct {
	conv   *Converter
	src    []byte
	result *Result
}

// rewrite returns the text of n with every mapped call below it replaced.
func (s *scriptRewriter) rewrite(n *sitter.Node) string {
	if n.Type() == "call" {
		return s.rewriteCall(n)
	}

	return s.rewriteChildren(n)
}

func (s *scriptRewriter) rewriteChildren(n *sitter.Node) string {
	count := int(n.ChildCount())
	if count == 0 {
		return n.Content(s.src)
	}

	var b strings.Builder

	pos := n.StartByte()

	for i := 0; i < count; i++ {
		child := n.Child(i)
		b.Write(s.src[pos:child.StartByte()])
		b.WriteString(s.rewrite(child))
		pos = child.EndByte()
	}

	b.Write(s.src[pos:n.EndByte()])

	return b.String()
}

// rewriteCall converts the callee and arguments first, then the call itself.
func (s *scriptRewriter) rewriteCall(n *sitter.Node) string {
	fn := n.ChildByFieldName("function")
	args := n.ChildByFieldName("arguments")

	if fn == nil || args == nil {
		return s.rewriteChildren(n)
	}

	fnText := s.rewrite(fn)
	argsText := s.rewrite(args)
	text := fnText + string(s.src[fn.EndByte():args.StartByte()]) + argsText

	if args.Type() != "argument_list" {
		return text
	}

	callee, ok := s.calleeName(fn)
	if !ok {
		return text
	}

	key, m, err := s.conv.lookup(callee)
	if errors.Is(err, mapping.ErrMappingNotFound) {
		return text
	}

	pos := n.StartPoint()

	var out Outcome
	if err != nil {
		out = Outcome{Name: key, Callee: callee, Hint: s.conv.registry.Hint(key), Err: err}
	} else {
		// the rewritten callee keeps converted receivers
		out = s.conv.apply(key, m, fnText, argsText)
		out.Callee = callee
	}

	out.Line = int(pos.Row) + 1
	out.Column = int(pos.Column) + 1
	s.result.Outcomes = append(s.result.Outcomes, out)

	logEvent := s.conv.log.Debug()
	if !out.Converted {
		logEvent = s.conv.log.Warn().AnErr("reason", out.Err)
	}

	logEvent.Str("name", key).Str("location", out.Location()).Msg("call visited")

	if !out.Converted {
		return text
	}

	return out.Output
}

// calleeName returns the dotted name used for lookup. Attribute chains on
// arbitrary objects, e.g. x.view(1).size, are returned as written; only the
// method fallback can match those.
func (s *scriptRewriter) calleeName(fn *sitter.Node) (string, bool) {
	switch fn.Type() {
	case "identifier", "attribute":
		return strings.Join(strings.Fields(fn.Content(s.src)), ""), true
	default:
		return "", false
	}
}

// firstError returns the position of the first error or missing node.
func firstError(n *sitter.Node) string {
	if n.IsError() || n.IsMissing() {
		p := n.StartPoint()
		return fmt.Sprintf("line %d:%d", p.Row+1, p.Column+1)
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.HasError() || child.IsMissing() {
			return firstError(child)
		}
	}

	return "unknown position"
}
