package make

import "github.com/zograscope/zograscope/internal/core/token"

// Token ids are this front-end's own lexical categories (there's no
// grammar library assigning them, unlike the tree-sitter front-ends), a
// direct port of the id-to-Type table in MakeLanguage.cpp's constructor.
const (
	tokNone int = iota
	tokComment
	tokAssignOp
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokColon
	tokDoubleColon
	tokDollar
	tokCallName
	tokKeyword
	tokDirective
	tokIdentifier
	tokText
	tokStrConst
	tokComma
	tokGlue
)

func mapToken(tok int) token.Type {
	switch tok {
	case tokComment:
		return token.Comments
	case tokAssignOp:
		return token.Assignments
	case tokLParen, tokLBrace:
		return token.LeftBrackets
	case tokRParen, tokRBrace:
		return token.RightBrackets
	case tokColon, tokDoubleColon:
		return token.Operators
	case tokDollar:
		return token.Operators
	case tokCallName:
		return token.Functions
	case tokKeyword:
		return token.Keywords
	case tokDirective:
		return token.Directives
	case tokIdentifier:
		return token.UserTypes
	case tokStrConst:
		return token.StrConstants
	case tokGlue:
		return token.Virtual
	default:
		return token.Other
	}
}
