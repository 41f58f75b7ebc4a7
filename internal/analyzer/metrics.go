package analyzer

import (
	"bytes"
	"math"
	"strings"

	"github.com/huangsam/debtspot/schema"
	sitter "github.com/smacker/go-tree-sitter"
)

// miCeiling is the maximum maintainability index on the Visual Studio scale.
const miCeiling = 100.0

// countLines returns the number of physical lines in the source.
func countLines(source []byte) int {
	if len(source) == 0 {
		return 0
	}
	lines := bytes.Count(source, []byte{'\n'})
	if source[len(source)-1] != '\n' {
		lines++
	}
	return lines
}

// walk visits every node in the subtree rooted at node, depth first.
func walk(node *sitter.Node, visit func(*sitter.Node)) {
	visit(node)
	for i := uint32(0); i < node.ChildCount(); i++ {
		if child := node.Child(int(i)); child != nil {
			walk(child, visit)
		}
	}
}

// computeBundle derives the full metrics bundle from a parsed syntax tree.
func computeBundle(root *sitter.Node, source []byte, lang Language, sloc int) schema.MetricsBundle {
	cycMax, cycSum := computeCyclomatic(root, source, lang)
	volume := computeHalsteadVolume(root, source, lang)
	cloc := computeCommentLines(root, lang)

	pct := 0.0
	if sloc > 0 {
		pct = 100 * float64(cloc) / float64(sloc)
	}

	return schema.MetricsBundle{
		HalsteadVolume:       volume,
		CyclomaticMax:        cycMax,
		CyclomaticSum:        cycSum,
		LinesOfCode:          float64(sloc),
		CommentsPercentage:   pct,
		MaintainabilityIndex: maintainabilityIndex(volume, cycSum, sloc),
	}
}

// computeCyclomatic returns the max and the sum of per-function complexity.
// A file without function definitions counts as a single top-level unit.
func computeCyclomatic(root *sitter.Node, source []byte, lang Language) (cycMax, cycSum float64) {
	fnTypes := functionNodeTypes(lang)

	var fns []*sitter.Node
	walk(root, func(n *sitter.Node) {
		if _, ok := fnTypes[n.Type()]; ok {
			fns = append(fns, n)
		}
	})
	if len(fns) == 0 {
		cc := countDecisions(root, source, lang) + 1
		return float64(cc), float64(cc)
	}

	for _, fn := range fns {
		cc := float64(countDecisions(fn, source, lang) + 1)
		cycMax = math.Max(cycMax, cc)
		cycSum += cc
	}
	return cycMax, cycSum
}

// countDecisions counts the decision points within a subtree.
func countDecisions(node *sitter.Node, source []byte, lang Language) int {
	decisionTypes := decisionNodeTypes(lang)
	count := 0
	walk(node, func(n *sitter.Node) {
		if _, ok := decisionTypes[n.Type()]; !ok {
			return
		}
		// Binary expressions only count when they are boolean operators.
		if n.Type() == "binary_expression" || n.Type() == "boolean_operator" {
			if !isBooleanOperator(n, source, lang) {
				return
			}
		}
		count++
	})
	return count
}

// computeCommentLines sums the line spans of all comment nodes.
func computeCommentLines(root *sitter.Node, lang Language) int {
	commentTypes := commentNodeTypes(lang)
	lines := 0
	walk(root, func(n *sitter.Node) {
		if _, ok := commentTypes[n.Type()]; ok {
			lines += int(n.EndPoint().Row-n.StartPoint().Row) + 1
		}
	})
	return lines
}

// computeHalsteadVolume derives the Halstead volume from the token stream.
// Named leaves (identifiers, literals) are operands; anonymous leaves
// (keywords, punctuation) are operators. Comments are skipped.
func computeHalsteadVolume(root *sitter.Node, source []byte, lang Language) float64 {
	commentTypes := commentNodeTypes(lang)

	operators := make(map[string]struct{})
	operands := make(map[string]struct{})
	var totalOperators, totalOperands int

	walk(root, func(n *sitter.Node) {
		if n.ChildCount() > 0 {
			return
		}
		if _, ok := commentTypes[n.Type()]; ok {
			return
		}
		token := strings.TrimSpace(string(source[n.StartByte():n.EndByte()]))
		if token == "" {
			return
		}
		if n.IsNamed() {
			operands[token] = struct{}{}
			totalOperands++
		} else {
			operators[token] = struct{}{}
			totalOperators++
		}
	})

	vocabulary := len(operators) + len(operands)
	length := totalOperators + totalOperands
	if vocabulary == 0 || length == 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(vocabulary))
}

// maintainabilityIndex computes the Visual Studio maintainability index,
// rescaled to 0..100. A file with no source lines is perfectly maintainable.
func maintainabilityIndex(volume, cyclomatic float64, sloc int) float64 {
	if sloc == 0 {
		return miCeiling
	}

	lnVolume := 0.0
	if volume > 1 {
		lnVolume = math.Log(volume)
	}

	mi := (171 - 5.2*lnVolume - 0.23*cyclomatic - 16.2*math.Log(float64(sloc))) * 100 / 171
	return math.Min(math.Max(mi, 0), miCeiling)
}
