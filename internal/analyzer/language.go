package analyzer

import (
	"fmt"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
)

// Language identifies a supported source language.
type Language string

// All languages with a wired grammar.
const (
	LangPython     Language = "python"
	LangGo         Language = "go"
	LangJavaScript Language = "javascript"
	LangUnknown    Language = "unknown"
)

// DetectLanguage classifies a file by name and contents.
// Classification by contents matters for extensionless or ambiguous names.
func DetectLanguage(path string, content []byte) Language {
	switch enry.GetLanguage(filepath.Base(path), content) {
	case "Python":
		return LangPython
	case "Go":
		return LangGo
	case "JavaScript":
		return LangJavaScript
	}
	return LangUnknown
}

// getLanguage returns the tree-sitter Language for a given language identifier.
func getLanguage(lang Language) (*sitter.Language, error) {
	switch lang {
	case LangPython:
		return python.GetLanguage(), nil
	case LangGo:
		return golang.GetLanguage(), nil
	case LangJavaScript:
		return javascript.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
}

// functionNodeTypes returns the node types that represent functions for a language.
func functionNodeTypes(lang Language) map[string]struct{} {
	switch lang {
	case LangPython:
		return map[string]struct{}{
			"function_definition": {},
			"lambda":              {},
		}
	case LangGo:
		return map[string]struct{}{
			"function_declaration": {},
			"method_declaration":   {},
			"func_literal":         {},
		}
	case LangJavaScript:
		return map[string]struct{}{
			"function_declaration":           {},
			"function_expression":            {},
			"arrow_function":                 {},
			"method_definition":              {},
			"generator_function_declaration": {},
		}
	default:
		return nil
	}
}

// decisionNodeTypes returns the node types that contribute to cyclomatic complexity.
func decisionNodeTypes(lang Language) map[string]struct{} {
	switch lang {
	case LangPython:
		return map[string]struct{}{
			"if_statement":             {},
			"elif_clause":              {},
			"for_statement":            {},
			"while_statement":          {},
			"except_clause":            {},
			"with_statement":           {},
			"boolean_operator":         {}, // and, or
			"conditional_expression":   {}, // ternary
			"list_comprehension":       {},
			"dictionary_comprehension": {},
			"set_comprehension":        {},
			"generator_expression":     {},
		}
	case LangGo:
		return map[string]struct{}{
			"if_statement":       {},
			"for_statement":      {},
			"expression_case":    {},
			"type_case":          {},
			"communication_case": {},
			"binary_expression":  {}, // for && and ||
		}
	case LangJavaScript:
		return map[string]struct{}{
			"if_statement":       {},
			"for_statement":      {},
			"for_in_statement":   {},
			"while_statement":    {},
			"do_statement":       {},
			"switch_case":        {},
			"catch_clause":       {},
			"ternary_expression": {},
			"binary_expression":  {}, // for && and ||
		}
	default:
		return nil
	}
}

// commentNodeTypes returns the node types that represent comments for a language.
func commentNodeTypes(lang Language) map[string]struct{} {
	switch lang {
	case LangPython, LangGo, LangJavaScript:
		return map[string]struct{}{"comment": {}}
	default:
		return nil
	}
}

// isBooleanOperator checks whether a binary expression node is && or ||.
// Other binary expressions (arithmetic, comparison) do not add decisions.
func isBooleanOperator(node *sitter.Node, source []byte, lang Language) bool {
	if node.Type() != "binary_expression" && node.Type() != "boolean_operator" {
		return false
	}

	for i := uint32(0); i < node.ChildCount(); i++ {
		child := node.Child(int(i))
		if child == nil {
			continue
		}

		switch lang {
		case LangPython:
			// Python uses 'and' and 'or' keywords
			if child.Type() == "and" || child.Type() == "or" {
				return true
			}
		default:
			content := string(source[child.StartByte():child.EndByte()])
			if content == "&&" || content == "||" {
				return true
			}
		}
	}

	return false
}
