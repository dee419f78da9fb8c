package lua

import "github.com/zograscope/zograscope/internal/core/ptree"

var stypeNames = [...]string{
	ptree.None:                "None",
	STProgram:                 "Program",
	STFunctionDeclaration:     "FunctionDeclaration",
	STFunctionName:            "FunctionName",
	STParameters:              "Parameters",
	STFunctionCall:            "FunctionCall",
	STArguments:               "Arguments",
	STVariableDeclaration:     "VariableDeclaration",
	STVariableDeclarator:      "VariableDeclarator",
	STUnaryExpression:         "UnaryExpression",
	STBinaryExpression:        "BinaryExpression",
	STIfStatement:             "IfStatement",
	STElseifStatement:         "ElseifStatement",
	STElseStatement:           "ElseStatement",
	STDoStatement:             "DoStatement",
	STRepeatStatement:         "RepeatStatement",
	STWhileStatement:          "WhileStatement",
	STForInStatement:          "ForInStatement",
	STForNumericStatement:     "ForNumericStatement",
	STGotoStatement:           "GotoStatement",
	STLabelStatement:          "LabelStatement",
	STReturnStatement:         "ReturnStatement",
	STBreakStatement:          "BreakStatement",
	STBlock:                   "Block",
	STTableConstructor:        "TableConstructor",
	STField:                   "Field",
	STDotIndexExpression:      "DotIndexExpression",
	STBracketIndexExpression:  "BracketIndexExpression",
	STMethodIndexExpression:   "MethodIndexExpression",
	STComment:                 "Comment",
	STIdentifier:              "Identifier",
	STNumber:                  "Number",
	STString:                  "String",
	STNil:                     "Nil",
	STTrue:                    "True",
	STFalse:                   "False",
	STVararg:                  "Vararg",
	STSemicolon:               "Semicolon",
	STDo:                      "Do",
	STEnd:                     "End",
	STLBrace:                  "LBrace",
	STRBrace:                  "RBrace",
	STLParen:                  "LParen",
	STRParen:                  "RParen",
	STComma:                   "Comma",
	STKeyword:                 "Keyword",
	STAssignOp:                "AssignOp",
}
