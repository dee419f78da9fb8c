package bash

import (
	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/lang/tscommon"
)

var nodeSpecs = map[string]tscommon.NodeSpec{
	"program":               {SType: STProgram, Type: token.Virtual},
	"command":               {SType: STCommand, Type: token.Virtual},
	"declaration_command":   {SType: STDeclarationCommand, Type: token.Virtual},
	"negated_command":       {SType: STNegatedCommand, Type: token.Virtual},
	"test_command":          {SType: STTestCommand, Type: token.Virtual},
	"unset_command":         {SType: STUnsetCommand, Type: token.Virtual},
	"compound_statement":    {SType: STCompoundStatement, Type: token.Virtual},
	"c_style_for_statement": {SType: STCStyleForStatement, Type: token.Virtual},
	"case_statement":        {SType: STCaseStatement, Type: token.Virtual},
	"for_statement":         {SType: STForStatement, Type: token.Virtual},
	"if_statement":          {SType: STIfStatement, Type: token.Virtual},
	"while_statement":       {SType: STWhileStatement, Type: token.Virtual},
	"variable_assignment":   {SType: STVariableAssignment, Type: token.Virtual},
	"redirected_statement":  {SType: STRedirectedStatement, Type: token.Virtual},
	"array":                 {SType: STArray, Type: token.Virtual},
	"binary_expression":     {SType: STBinaryExpression, Type: token.Virtual},
	"case_item":             {SType: STCaseItem, Type: token.Virtual},
	"command_name":          {SType: STCommandName, Type: token.Virtual},
	"command_substitution":  {SType: STCommandSubstitution, Type: token.Virtual},
	"concatenation":         {SType: STConcatenation, Type: token.Virtual},
	"do_group":              {SType: STDoGroup, Type: token.Virtual},
	"elif_clause":           {SType: STElifClause, Type: token.Virtual},
	"else_clause":           {SType: STElseClause, Type: token.Virtual},
	"expansion":             {SType: STExpansion, Type: token.Virtual},
	"file_redirect":         {SType: STFileRedirect, Type: token.Virtual},
	"function_definition":   {SType: STFunctionDefinition, Type: token.Virtual},
	"heredoc_body":          {SType: STHeredocBody, Type: token.StrConstants},
	"list":                  {SType: STList, Type: token.Virtual},
	"parenthesized_expression": {SType: STParenthesizedExpression, Type: token.Virtual},
	"pipeline":                {SType: STPipeline, Type: token.Virtual},
	"postfix_expression":      {SType: STPostfixExpression, Type: token.Virtual},
	"process_substitution":    {SType: STProcessSubstitution, Type: token.Virtual},
	"simple_expansion":        {SType: STSimpleExpansion, Type: token.Virtual},
	"string":                  {SType: STString, Type: token.StrConstants},
	"subshell":                {SType: STSubshell, Type: token.Virtual},
	"ternary_expression":      {SType: STTernaryExpression, Type: token.Virtual},
	"unary_expression":        {SType: STUnaryExpression, Type: token.Virtual},
	"word":                    {SType: STWord, Type: token.Identifiers},

	"comment":              {SType: STComment, Type: token.Comments},
	"variable_name":        {SType: STVariableName, Type: token.Identifiers},
	"special_variable_name": {SType: STVariableName, Type: token.Identifiers},
	"number":               {SType: STNumber, Type: token.IntConstants},
	"raw_string":           {SType: STRawString, Type: token.StrConstants},
	"ansi_c_string":        {SType: STRawString, Type: token.StrConstants},

	";":  {SType: STSemicolon, Type: token.Other},
	"\n": {SType: STNewline, Type: token.Other},
	"{":  {SType: STLBrace, Type: token.LeftBrackets},
	"}":  {SType: STRBrace, Type: token.RightBrackets},
	"(":  {SType: STLParen, Type: token.LeftBrackets},
	")":  {SType: STRParen, Type: token.RightBrackets},
	"$(": {SType: STDollarParen, Type: token.LeftBrackets},
	"|":  {SType: STPipe, Type: token.Operators},
	"&":  {SType: STAmp, Type: token.Operators},
	"&&": {SType: STAmp, Type: token.LogicalOperators},
	"||": {SType: STAmp, Type: token.LogicalOperators},

	"if":     {SType: STKeyword, Type: token.Keywords},
	"then":   {SType: STKeyword, Type: token.Keywords},
	"else":   {SType: STKeyword, Type: token.Keywords},
	"elif":   {SType: STKeyword, Type: token.Keywords},
	"fi":     {SType: STKeyword, Type: token.Keywords},
	"for":    {SType: STKeyword, Type: token.Keywords},
	"while":  {SType: STKeyword, Type: token.Keywords},
	"do":     {SType: STKeyword, Type: token.Keywords},
	"done":   {SType: STKeyword, Type: token.Keywords},
	"case":   {SType: STKeyword, Type: token.Keywords},
	"esac":   {SType: STKeyword, Type: token.Keywords},
	"in":     {SType: STKeyword, Type: token.Keywords},
	"function": {SType: STKeyword, Type: token.Keywords},
}
