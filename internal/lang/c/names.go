package c

import "github.com/zograscope/zograscope/internal/core/ptree"

// stypeNames renders an SType for --dump-tree/--dump-stree, in the same
// order as the const block in stype.go.
var stypeNames = [...]string{
	ptree.None:                  "None",
	STTranslationUnit:           "TranslationUnit",
	STFunctionDefinition:        "FunctionDefinition",
	STDeclaration:               "Declaration",
	STParameterList:             "ParameterList",
	STParameterDeclaration:      "ParameterDeclaration",
	STCompoundStatement:         "CompoundStatement",
	STIfStatement:               "IfStatement",
	STElseClause:                "ElseClause",
	STForStatement:              "ForStatement",
	STWhileStatement:            "WhileStatement",
	STDoStatement:               "DoStatement",
	STSwitchStatement:           "SwitchStatement",
	STCaseStatement:             "CaseStatement",
	STLabeledStatement:          "LabeledStatement",
	STReturnStatement:           "ReturnStatement",
	STBreakStatement:            "BreakStatement",
	STContinueStatement:         "ContinueStatement",
	STGotoStatement:             "GotoStatement",
	STExpressionStatement:       "ExpressionStatement",
	STCallExpression:            "CallExpression",
	STArgumentList:              "ArgumentList",
	STAssignmentExpression:      "AssignmentExpression",
	STBinaryExpression:          "BinaryExpression",
	STUnaryExpression:           "UnaryExpression",
	STUpdateExpression:          "UpdateExpression",
	STCastExpression:            "CastExpression",
	STSizeofExpression:          "SizeofExpression",
	STSubscriptExpression:       "SubscriptExpression",
	STFieldExpression:           "FieldExpression",
	STParenthesizedExpression:   "ParenthesizedExpression",
	STCommaExpression:           "CommaExpression",
	STPointerExpression:         "PointerExpression",
	STConditionalExpression:     "ConditionalExpression",
	STInitDeclarator:            "InitDeclarator",
	STInitializerList:           "InitializerList",
	STInitializerPair:           "InitializerPair",
	STFieldDesignator:           "FieldDesignator",
	STSubscriptDesignator:       "SubscriptDesignator",
	STDeclarator:                "Declarator",
	STPointerDeclarator:         "PointerDeclarator",
	STArrayDeclarator:           "ArrayDeclarator",
	STFunctionDeclarator:        "FunctionDeclarator",
	STAbstractPointerDeclarator: "AbstractPointerDeclarator",
	STStructSpecifier:           "StructSpecifier",
	STUnionSpecifier:            "UnionSpecifier",
	STEnumSpecifier:             "EnumSpecifier",
	STEnumerator:                "Enumerator",
	STEnumeratorList:            "EnumeratorList",
	STFieldDeclaration:          "FieldDeclaration",
	STFieldDeclarationList:      "FieldDeclarationList",
	STTypeDefinition:            "TypeDefinition",
	STPreprocInclude:            "PreprocInclude",
	STPreprocDef:                "PreprocDef",
	STPreprocFunctionDef:        "PreprocFunctionDef",
	STPreprocIf:                 "PreprocIf",
	STPreprocIfdef:              "PreprocIfdef",
	STPreprocElse:               "PreprocElse",
	STPreprocElif:               "PreprocElif",
	STPreprocCall:               "PreprocCall",
	STComment:                   "Comment",
	STIdentifier:                "Identifier",
	STFieldIdentifier:           "FieldIdentifier",
	STTypeIdentifier:            "TypeIdentifier",
	STPrimitiveType:             "PrimitiveType",
	STSizedTypeSpecifier:        "SizedTypeSpecifier",
	STStorageClassSpecifier:     "StorageClassSpecifier",
	STTypeQualifier:             "TypeQualifier",
	STNumberLiteral:             "NumberLiteral",
	STStringLiteral:             "StringLiteral",
	STCharLiteral:               "CharLiteral",
	STTrueFalse:                 "TrueFalse",
	STNull:                      "Null",
	STComma:                     "Comma",
	STSemicolon:                 "Semicolon",
	STLBrace:                    "LBrace",
	STRBrace:                    "RBrace",
	STLParen:                    "LParen",
	STRParen:                    "RParen",
	STLBracket:                  "LBracket",
	STRBracket:                  "RBracket",
	STAssignOp:                  "AssignOp",
	STCompareOp:                 "CompareOp",
	STLogicalOp:                 "LogicalOp",
	STArithOp:                   "ArithOp",
	STKeyword:                   "Keyword",
	STEllipsis:                  "Ellipsis",
	STColon:                     "Colon",
}
