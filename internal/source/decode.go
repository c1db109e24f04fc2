package source

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DecodeToUTF8 converts raw in the named charset (IANA/WHATWG label, e.g.
// "latin1", "windows-1252", "shift_jis") into UTF-8. An empty name or any UTF-8
// label returns raw unchanged; transcoded reports whether a conversion happened.
func DecodeToUTF8(raw []byte, charset string) (out []byte, transcoded bool, err error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" || name == "utf-8" || name == "utf8" {
		return raw, false, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, false, fmt.Errorf("unsupported source encoding %q: %w", charset, err)
	}
	// htmlindex резолвит алиасы; utf-8 под другим именем не трогаем
	if canonical, cerr := htmlindex.Name(enc); cerr == nil && canonical == "utf-8" {
		return raw, false, nil
	}
	out, _, err = transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", charset, err)
	}
	return out, true, nil
}
