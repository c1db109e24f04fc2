package token

// CommentForm is the marker form of a comment, decided by its opening sequence.
type CommentForm uint8

const (
	// FormLine is a plain `//` comment.
	FormLine CommentForm = iota
	// FormBlock is a plain `/* */` comment.
	FormBlock
	// FormDocLine is `///` or `//!`.
	FormDocLine
	// FormDocBlock is `/**` or `/*!`.
	FormDocBlock
	// FormTrailingLine is `///<` or `//!<`.
	FormTrailingLine
	// FormTrailingBlock is `/**<` or `/*!<`.
	FormTrailingBlock
)

func (f CommentForm) String() string {
	switch f {
	case FormLine:
		return "line"
	case FormBlock:
		return "block"
	case FormDocLine:
		return "doc-line"
	case FormDocBlock:
		return "doc-block"
	case FormTrailingLine:
		return "trailing-line"
	case FormTrailingBlock:
		return "trailing-block"
	default:
		return "form(?)"
	}
}

// IsDoc reports whether the form is a documentation comment.
func (f CommentForm) IsDoc() bool {
	return f >= FormDocLine && f <= FormTrailingBlock
}

// IsTrailing reports whether the form carries the `<` back-reference marker.
func (f CommentForm) IsTrailing() bool {
	return f == FormTrailingLine || f == FormTrailingBlock
}

// IsBlock reports whether the form is a `/* */` comment.
func (f CommentForm) IsBlock() bool {
	return f == FormBlock || f == FormDocBlock || f == FormTrailingBlock
}

// Placement describes where a comment sits relative to the declaration it documents.
type Placement uint8

const (
	// Leading comments document what follows them.
	Leading Placement = iota
	// TrailingInline comments document the declarator before them on the same line.
	TrailingInline
)

func (p Placement) String() string {
	if p == TrailingInline {
		return "TRAILING_INLINE"
	}
	return "LEADING"
}

// CommentScope tells whether a comment is a single line or a block.
type CommentScope uint8

const (
	SingleLine CommentScope = iota
	Block
)

func (s CommentScope) String() string {
	if s == Block {
		return "BLOCK"
	}
	return "SINGLE_LINE"
}

// CommentInfo is the classification attached to every Comment token.
type CommentInfo struct {
	Form      CommentForm
	Placement Placement
	Scope     CommentScope
	Doc       bool
}
