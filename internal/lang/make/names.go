package make

import "github.com/zograscope/zograscope/internal/core/ptree"

var stypeNames = [...]string{
	ptree.None:            "None",
	STLineGlue:            "LineGlue",
	STMakefile:            "Makefile",
	STStatements:          "Statements",
	STSeparator:           "Separator",
	STIfStmt:              "IfStmt",
	STIfCond:              "IfCond",
	STElseClause:          "ElseClause",
	STMultilineAssignment: "MultilineAssignment",
	STTemporaryContainer:  "TemporaryContainer",
	STInclude:             "Include",
	STDirective:           "Directive",
	STComment:             "Comment",
	STAssignmentExpr:      "AssignmentExpr",
	STCallExpr:            "CallExpr",
	STArgumentList:        "ArgumentList",
	STArgument:            "Argument",
	STRule:                "Rule",
	STTargetList:          "TargetList",
	STPrereqList:          "PrereqList",
	STRecipe:              "Recipe",
	STRecipeLine:          "RecipeLine",
	STPunctuation:         "Punctuation",
	STIdentifier:          "Identifier",
	STText:                "Text",
}
