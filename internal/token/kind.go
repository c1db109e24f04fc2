package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwUnion represents the 'union' keyword.
	KwUnion // union
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwTypedef represents the 'typedef' keyword.
	KwTypedef // typedef
	// KwUsing represents the 'using' keyword.
	KwUsing // using
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace // namespace
	// KwTemplate represents the 'template' keyword.
	KwTemplate // template
	// KwPublic represents the 'public' keyword.
	KwPublic // public
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwFriend represents the 'friend' keyword.
	KwFriend // friend
	// KwOperator represents the 'operator' keyword.
	KwOperator // operator
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern

	// NumberLit represents a preprocessing number (integer or floating).
	NumberLit
	// StringLit represents a string literal, including raw and prefixed forms.
	StringLit
	// CharLit represents a character literal.
	CharLit

	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Semicolon // ;
	Comma     // ,
	Colon     // :
	// ColonColon is the scope resolution operator.
	ColonColon // ::
	Lt         // <
	Gt         // >
	Shl        // <<
	Shr        // >>
	Assign     // =
	Star       // *
	Amp        // &
	AndAnd     // &&
	Tilde      // ~
	Dot        // .
	Arrow      // ->
	Ellipsis   // ...
	Question   // ?
	// Op is any other operator or punctuator; the text tells which.
	Op

	// Directive is a whole preprocessor line.
	Directive
	// Comment is a line or block comment; see Token.Comment.
	Comment
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	KwClass:     "KwClass",
	KwStruct:    "KwStruct",
	KwUnion:     "KwUnion",
	KwEnum:      "KwEnum",
	KwTypedef:   "KwTypedef",
	KwUsing:     "KwUsing",
	KwNamespace: "KwNamespace",
	KwTemplate:  "KwTemplate",
	KwPublic:    "KwPublic",
	KwProtected: "KwProtected",
	KwPrivate:   "KwPrivate",
	KwFriend:    "KwFriend",
	KwOperator:  "KwOperator",
	KwExtern:    "KwExtern",
	NumberLit:   "NumberLit",
	StringLit:   "StringLit",
	CharLit:     "CharLit",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LParen:      "LParen",
	RParen:      "RParen",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	Semicolon:   "Semicolon",
	Comma:       "Comma",
	Colon:       "Colon",
	ColonColon:  "ColonColon",
	Lt:          "Lt",
	Gt:          "Gt",
	Shl:         "Shl",
	Shr:         "Shr",
	Assign:      "Assign",
	Star:        "Star",
	Amp:         "Amp",
	AndAnd:      "AndAnd",
	Tilde:       "Tilde",
	Dot:         "Dot",
	Arrow:       "Arrow",
	Ellipsis:    "Ellipsis",
	Question:    "Question",
	Op:          "Op",
	Directive:   "Directive",
	Comment:     "Comment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether the kind marks the end of input.
func (k Kind) IsEOF() bool { return k == EOF }

// IsAggregate reports whether the kind opens a class-like or enum type.
func (k Kind) IsAggregate() bool {
	switch k {
	case KwClass, KwStruct, KwUnion, KwEnum:
		return true
	default:
		return false
	}
}

// IsAccess reports whether the kind is an access specifier keyword.
func (k Kind) IsAccess() bool {
	return k == KwPublic || k == KwProtected || k == KwPrivate
}
