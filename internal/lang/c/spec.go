package c

import (
	"github.com/zograscope/zograscope/internal/core/token"
	"github.com/zograscope/zograscope/internal/lang/tscommon"
)

// nodeSpecs maps tree-sitter-c grammar node-type strings (named
// productions and the anonymous tokens that matter for matching/
// highlighting) onto an SType + token.Type pair. Anything this table
// doesn't mention falls back to (ptree.None, token.Other) with a
// --debug-gated warning (§7) rather than failing the parse.
var nodeSpecs = map[string]tscommon.NodeSpec{
	"translation_unit":        {SType: STTranslationUnit, Type: token.Virtual},
	"function_definition":     {SType: STFunctionDefinition, Type: token.Virtual},
	"declaration":             {SType: STDeclaration, Type: token.Virtual},
	"parameter_list":          {SType: STParameterList, Type: token.Virtual},
	"parameter_declaration":   {SType: STParameterDeclaration, Type: token.Virtual},
	"compound_statement":      {SType: STCompoundStatement, Type: token.Virtual},
	"if_statement":            {SType: STIfStatement, Type: token.Virtual},
	"else_clause":             {SType: STElseClause, Type: token.Virtual},
	"for_statement":           {SType: STForStatement, Type: token.Virtual},
	"while_statement":         {SType: STWhileStatement, Type: token.Virtual},
	"do_statement":            {SType: STDoStatement, Type: token.Virtual},
	"switch_statement":        {SType: STSwitchStatement, Type: token.Virtual},
	"case_statement":          {SType: STCaseStatement, Type: token.Virtual},
	"labeled_statement":       {SType: STLabeledStatement, Type: token.Virtual},
	"return_statement":        {SType: STReturnStatement, Type: token.Jumps},
	"break_statement":         {SType: STBreakStatement, Type: token.Jumps},
	"continue_statement":      {SType: STContinueStatement, Type: token.Jumps},
	"goto_statement":          {SType: STGotoStatement, Type: token.Jumps},
	"expression_statement":    {SType: STExpressionStatement, Type: token.Virtual},

	"call_expression":             {SType: STCallExpression, Type: token.Virtual},
	"argument_list":                {SType: STArgumentList, Type: token.Virtual},
	"assignment_expression":        {SType: STAssignmentExpression, Type: token.Virtual},
	"binary_expression":            {SType: STBinaryExpression, Type: token.Virtual},
	"unary_expression":             {SType: STUnaryExpression, Type: token.Virtual},
	"update_expression":            {SType: STUpdateExpression, Type: token.Virtual},
	"cast_expression":              {SType: STCastExpression, Type: token.Virtual},
	"sizeof_expression":            {SType: STSizeofExpression, Type: token.Virtual},
	"subscript_expression":         {SType: STSubscriptExpression, Type: token.Virtual},
	"field_expression":             {SType: STFieldExpression, Type: token.Virtual},
	"parenthesized_expression":     {SType: STParenthesizedExpression, Type: token.Virtual},
	"comma_expression":             {SType: STCommaExpression, Type: token.Virtual},
	"pointer_expression":           {SType: STPointerExpression, Type: token.Virtual},
	"conditional_expression":       {SType: STConditionalExpression, Type: token.Virtual},

	"init_declarator":              {SType: STInitDeclarator, Type: token.Virtual},
	"initializer_list":             {SType: STInitializerList, Type: token.Virtual},
	"initializer_pair":             {SType: STInitializerPair, Type: token.Virtual},
	"field_designator":             {SType: STFieldDesignator, Type: token.Identifiers},
	"subscript_designator":         {SType: STSubscriptDesignator, Type: token.Virtual},
	"pointer_declarator":           {SType: STPointerDeclarator, Type: token.Virtual},
	"array_declarator":             {SType: STArrayDeclarator, Type: token.Virtual},
	"function_declarator":          {SType: STFunctionDeclarator, Type: token.Virtual},
	"abstract_pointer_declarator":  {SType: STAbstractPointerDeclarator, Type: token.Virtual},

	"struct_specifier":        {SType: STStructSpecifier, Type: token.Virtual},
	"union_specifier":         {SType: STUnionSpecifier, Type: token.Virtual},
	"enum_specifier":          {SType: STEnumSpecifier, Type: token.Virtual},
	"enumerator":              {SType: STEnumerator, Type: token.Virtual},
	"enumerator_list":         {SType: STEnumeratorList, Type: token.Virtual},
	"field_declaration":       {SType: STFieldDeclaration, Type: token.Virtual},
	"field_declaration_list":  {SType: STFieldDeclarationList, Type: token.Virtual},
	"type_definition":         {SType: STTypeDefinition, Type: token.Virtual},

	"preproc_include":      {SType: STPreprocInclude, Type: token.Directives},
	"preproc_def":          {SType: STPreprocDef, Type: token.Directives},
	"preproc_function_def": {SType: STPreprocFunctionDef, Type: token.Directives},
	"preproc_if":           {SType: STPreprocIf, Type: token.Directives},
	"preproc_ifdef":        {SType: STPreprocIfdef, Type: token.Directives},
	"preproc_else":         {SType: STPreprocElse, Type: token.Directives},
	"preproc_elif":         {SType: STPreprocElif, Type: token.Directives},
	"preproc_call":         {SType: STPreprocCall, Type: token.Directives},

	"comment":           {SType: STComment, Type: token.Comments},
	"identifier":        {SType: STIdentifier, Type: token.Identifiers},
	"field_identifier":  {SType: STFieldIdentifier, Type: token.Identifiers},
	"type_identifier":   {SType: STTypeIdentifier, Type: token.UserTypes},
	"primitive_type":    {SType: STPrimitiveType, Type: token.Types},
	"sized_type_specifier": {SType: STSizedTypeSpecifier, Type: token.Types},
	"storage_class_specifier": {SType: STStorageClassSpecifier, Type: token.Specifiers},
	"type_qualifier":   {SType: STTypeQualifier, Type: token.Specifiers},
	"number_literal":   {SType: STNumberLiteral, Type: token.IntConstants},
	"string_literal":   {SType: STStringLiteral, Type: token.StrConstants},
	"char_literal":     {SType: STCharLiteral, Type: token.CharConstants},
	"null":              {SType: STNull, Type: token.Keywords},
	"system_lib_string": {SType: STStringLiteral, Type: token.StrConstants},

	// Structural punctuation, each given its own SType so IsSatellite can
	// flag exactly these (§4.6) rather than every untagged leaf.
	",": {SType: STComma, Type: token.Other},
	";": {SType: STSemicolon, Type: token.Other},
	"{": {SType: STLBrace, Type: token.LeftBrackets},
	"}": {SType: STRBrace, Type: token.RightBrackets},
	"(": {SType: STLParen, Type: token.LeftBrackets},
	")": {SType: STRParen, Type: token.RightBrackets},
	"[": {SType: STLBracket, Type: token.LeftBrackets},
	"]": {SType: STRBracket, Type: token.RightBrackets},
	":": {SType: STColon, Type: token.Other},
	"...": {SType: STEllipsis, Type: token.Other},

	"=":   {SType: STAssignOp, Type: token.Assignments},
	"+=":  {SType: STAssignOp, Type: token.Assignments},
	"-=":  {SType: STAssignOp, Type: token.Assignments},
	"*=":  {SType: STAssignOp, Type: token.Assignments},
	"/=":  {SType: STAssignOp, Type: token.Assignments},
	"%=":  {SType: STAssignOp, Type: token.Assignments},
	"&=":  {SType: STAssignOp, Type: token.Assignments},
	"|=":  {SType: STAssignOp, Type: token.Assignments},
	"^=":  {SType: STAssignOp, Type: token.Assignments},
	"<<=": {SType: STAssignOp, Type: token.Assignments},
	">>=": {SType: STAssignOp, Type: token.Assignments},

	"==": {SType: STCompareOp, Type: token.Comparisons},
	"!=": {SType: STCompareOp, Type: token.Comparisons},
	"<":  {SType: STCompareOp, Type: token.Comparisons},
	">":  {SType: STCompareOp, Type: token.Comparisons},
	"<=": {SType: STCompareOp, Type: token.Comparisons},
	">=": {SType: STCompareOp, Type: token.Comparisons},

	"&&": {SType: STLogicalOp, Type: token.LogicalOperators},
	"||": {SType: STLogicalOp, Type: token.LogicalOperators},
	"!":  {SType: STLogicalOp, Type: token.LogicalOperators},

	"+":  {SType: STArithOp, Type: token.Operators},
	"-":  {SType: STArithOp, Type: token.Operators},
	"*":  {SType: STArithOp, Type: token.Operators},
	"/":  {SType: STArithOp, Type: token.Operators},
	"%":  {SType: STArithOp, Type: token.Operators},
	"&":  {SType: STArithOp, Type: token.Operators},
	"|":  {SType: STArithOp, Type: token.Operators},
	"^":  {SType: STArithOp, Type: token.Operators},
	"~":  {SType: STArithOp, Type: token.Operators},
	"<<": {SType: STArithOp, Type: token.Operators},
	">>": {SType: STArithOp, Type: token.Operators},
	"++": {SType: STArithOp, Type: token.Operators},
	"--": {SType: STArithOp, Type: token.Operators},
	".":  {SType: STArithOp, Type: token.Operators},
	"->": {SType: STArithOp, Type: token.Operators},
	"?":  {SType: STArithOp, Type: token.Operators},

	"if":       {SType: STKeyword, Type: token.Keywords},
	"else":     {SType: STKeyword, Type: token.Keywords},
	"for":      {SType: STKeyword, Type: token.Keywords},
	"while":    {SType: STKeyword, Type: token.Keywords},
	"do":       {SType: STKeyword, Type: token.Keywords},
	"switch":   {SType: STKeyword, Type: token.Keywords},
	"case":     {SType: STKeyword, Type: token.Keywords},
	"default":  {SType: STKeyword, Type: token.Keywords},
	"return":   {SType: STKeyword, Type: token.Jumps},
	"break":    {SType: STKeyword, Type: token.Jumps},
	"continue": {SType: STKeyword, Type: token.Jumps},
	"goto":     {SType: STKeyword, Type: token.Jumps},
	"sizeof":   {SType: STKeyword, Type: token.Keywords},
	"typedef":  {SType: STKeyword, Type: token.Specifiers},
	"struct":   {SType: STKeyword, Type: token.Keywords},
	"union":    {SType: STKeyword, Type: token.Keywords},
	"enum":     {SType: STKeyword, Type: token.Keywords},
	"static":   {SType: STKeyword, Type: token.Specifiers},
	"extern":   {SType: STKeyword, Type: token.Specifiers},
	"const":    {SType: STKeyword, Type: token.Specifiers},
	"volatile": {SType: STKeyword, Type: token.Specifiers},
	"inline":   {SType: STKeyword, Type: token.Specifiers},
	"register": {SType: STKeyword, Type: token.Specifiers},
	"void":     {SType: STPrimitiveType, Type: token.Types},
	"signed":   {SType: STKeyword, Type: token.Types},
	"unsigned": {SType: STKeyword, Type: token.Types},
}
