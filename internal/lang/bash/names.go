package bash

import "github.com/zograscope/zograscope/internal/core/ptree"

var stypeNames = [...]string{
	ptree.None:                "None",
	STProgram:                 "Program",
	STCommand:                 "Command",
	STDeclarationCommand:      "DeclarationCommand",
	STNegatedCommand:          "NegatedCommand",
	STTestCommand:             "TestCommand",
	STUnsetCommand:            "UnsetCommand",
	STCompoundStatement:       "CompoundStatement",
	STCStyleForStatement:      "CStyleForStatement",
	STCaseStatement:           "CaseStatement",
	STForStatement:            "ForStatement",
	STIfStatement:             "IfStatement",
	STWhileStatement:          "WhileStatement",
	STVariableAssignment:      "VariableAssignment",
	STRedirectedStatement:     "RedirectedStatement",
	STArray:                   "Array",
	STBinaryExpression:        "BinaryExpression",
	STCaseItem:                "CaseItem",
	STCommandName:             "CommandName",
	STCommandSubstitution:     "CommandSubstitution",
	STConcatenation:           "Concatenation",
	STDoGroup:                 "DoGroup",
	STElifClause:              "ElifClause",
	STElseClause:              "ElseClause",
	STExpansion:               "Expansion",
	STFileRedirect:            "FileRedirect",
	STFunctionDefinition:      "FunctionDefinition",
	STHeredocBody:             "HeredocBody",
	STList:                    "List",
	STLineContinuation:        "LineContinuation",
	STParenthesizedExpression: "ParenthesizedExpression",
	STPipeline:                "Pipeline",
	STPostfixExpression:       "PostfixExpression",
	STProcessSubstitution:     "ProcessSubstitution",
	STSimpleExpansion:         "SimpleExpansion",
	STString:                  "String",
	STSubshell:                "Subshell",
	STTernaryExpression:       "TernaryExpression",
	STUnaryExpression:         "UnaryExpression",
	STWord:                    "Word",
	STComment:                 "Comment",
	STVariableName:            "VariableName",
	STNumber:                  "Number",
	STRawString:               "RawString",
	STSemicolon:               "Semicolon",
	STNewline:                 "Newline",
	STLBrace:                  "LBrace",
	STRBrace:                  "RBrace",
	STLParen:                  "LParen",
	STRParen:                  "RParen",
	STDollarParen:             "DollarParen",
	STPipe:                    "Pipe",
	STAmp:                     "Amp",
	STKeyword:                 "Keyword",
}
