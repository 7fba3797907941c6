package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

const maxFuzzInput = 1 << 16 // 64 KiB

var inlineSeeds = []string{
	"",
	`moduleName = "x"`,
	"main: function[][]",
	"main: function[][ os.print[\"hi\\n\"] ]",
	"n: int\nm = 42\n",
	"main: function[][ BEGIN_FOREIGN_CODE_C\nputs(\"x\");\nEND_FOREIGN_CODE_C ]",
	"main: function[][ BEGIN_FOREIGN_CODE_ ]",
	"main: function[x][]",
	"\"unterminated",
	"/* open comment",
	"a.b.c[d.e]",
	"main: function[][ [ [ ]",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".hs" {
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
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
