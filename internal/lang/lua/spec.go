package lua

import (
	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/lang/tscommon"
)

var nodeSpecs = map[string]tscommon.NodeSpec{
	"chunk":                     {SType: STProgram, Type: token.Virtual},
	"function_declaration":      {SType: STFunctionDeclaration, Type: token.Virtual},
	"function_definition":       {SType: STFunctionDeclaration, Type: token.Virtual},
	"function_name":             {SType: STFunctionName, Type: token.Identifiers},
	"parameters":                {SType: STParameters, Type: token.Virtual},
	"function_call":             {SType: STFunctionCall, Type: token.Virtual},
	"arguments":                 {SType: STArguments, Type: token.Virtual},
	"local_variable_declaration": {SType: STVariableDeclaration, Type: token.Virtual},
	"variable_declaration":      {SType: STVariableDeclaration, Type: token.Virtual},
	"assignment_statement":      {SType: STVariableDeclaration, Type: token.Virtual},
	"unary_expression":          {SType: STUnaryExpression, Type: token.Virtual},
	"binary_expression":         {SType: STBinaryExpression, Type: token.Virtual},
	"if_statement":              {SType: STIfStatement, Type: token.Virtual},
	"elseif_statement":          {SType: STElseifStatement, Type: token.Virtual},
	"else_statement":            {SType: STElseStatement, Type: token.Virtual},
	"do_statement":              {SType: STDoStatement, Type: token.Virtual},
	"repeat_statement":          {SType: STRepeatStatement, Type: token.Virtual},
	"while_statement":           {SType: STWhileStatement, Type: token.Virtual},
	"for_in_statement":          {SType: STForInStatement, Type: token.Virtual},
	"for_numeric_statement":     {SType: STForNumericStatement, Type: token.Virtual},
	"goto_statement":            {SType: STGotoStatement, Type: token.Jumps},
	"label_statement":           {SType: STLabelStatement, Type: token.Virtual},
	"return_statement":          {SType: STReturnStatement, Type: token.Jumps},
	"break_statement":           {SType: STBreakStatement, Type: token.Jumps},
	"block":                     {SType: STBlock, Type: token.Virtual},
	"table_constructor":         {SType: STTableConstructor, Type: token.Virtual},
	"field":                     {SType: STField, Type: token.Virtual},
	"dot_index_expression":      {SType: STDotIndexExpression, Type: token.Virtual},
	"bracket_index_expression":  {SType: STBracketIndexExpression, Type: token.Virtual},
	"method_index_expression":   {SType: STMethodIndexExpression, Type: token.Virtual},

	"comment":    {SType: STComment, Type: token.Comments},
	"identifier": {SType: STIdentifier, Type: token.Identifiers},
	"number":     {SType: STNumber, Type: token.IntConstants},
	"string":     {SType: STString, Type: token.StrConstants},
	"nil":        {SType: STNil, Type: token.Keywords},
	"true":       {SType: STTrue, Type: token.Keywords},
	"false":      {SType: STFalse, Type: token.Keywords},
	"vararg_expression": {SType: STVararg, Type: token.Other},

	";":  {SType: STSemicolon, Type: token.Other},
	"do": {SType: STDo, Type: token.Keywords},
	"end": {SType: STEnd, Type: token.Keywords},
	"{":  {SType: STLBrace, Type: token.LeftBrackets},
	"}":  {SType: STRBrace, Type: token.RightBrackets},
	"(":  {SType: STLParen, Type: token.LeftBrackets},
	")":  {SType: STRParen, Type: token.RightBrackets},
	",":  {SType: STComma, Type: token.Other},
	"=":  {SType: STAssignOp, Type: token.Assignments},

	"if":       {SType: STKeyword, Type: token.Keywords},
	"then":     {SType: STKeyword, Type: token.Keywords},
	"else":     {SType: STKeyword, Type: token.Keywords},
	"elseif":   {SType: STKeyword, Type: token.Keywords},
	"for":      {SType: STKeyword, Type: token.Keywords},
	"while":    {SType: STKeyword, Type: token.Keywords},
	"repeat":   {SType: STKeyword, Type: token.Keywords},
	"until":    {SType: STKeyword, Type: token.Keywords},
	"function": {SType: STKeyword, Type: token.Keywords},
	"local":    {SType: STKeyword, Type: token.Specifiers},
	"in":       {SType: STKeyword, Type: token.Keywords},
}
