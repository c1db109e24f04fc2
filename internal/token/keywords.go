package token

var keywords = map[string]Kind{
	"class":     KwClass,
	"struct":    KwStruct,
	"union":     KwUnion,
	"enum":      KwEnum,
	"typedef":   KwTypedef,
	"using":     KwUsing,
	"namespace": KwNamespace,
	"template":  KwTemplate,
	"public":    KwPublic,
	"protected": KwProtected,
	"private":   KwPrivate,
	"friend":    KwFriend,
	"operator":  KwOperator,
	"extern":    KwExtern,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые, как и в C++.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
