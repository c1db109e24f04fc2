package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// headerSeeds are small inputs covering the constructs the scanner has
// dedicated paths for.
var headerSeeds = []string{
	"",
	"int x;",
	"/// doc\nclass A { public: void f(); int a, b; ///< b doc\n};",
	"struct S { int bits : 3; } s1, s2;",
	"typedef struct { int x; } T;",
	"enum class E : int { A = 1, B /**< b */ };",
	"namespace n { extern \"C\" { void c(); } }",
	"template <typename T> class V { T& operator[](int i); bool operator<(const V&) const; };",
	"K() : a_(1), b_{2} {}",
	"#define M(x) \\\n  x\nM(1)\n",
	"void f() { if (x) { y(); } } int after;",
	"class Open {",
	"} ) ] }",
	"char c = '\\'';\nconst char* s = \"unterminated",
	"/* never closed",
	"int f(int (*cb)(int), int a[3]);",
	"void (A::)(int);\nint after;\n",
	"int (C::*pm)(int);",
	"DECLARE_THING(x)\n/// doc\nint y;\n",
	"enum E { 1, A };\nstruct S { = 5; int a; };",
	"int a<b<c<d<e<f<g<h",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range headerSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все заголовки
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".h", ".hh", ".hpp", ".H":
		default:
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
