package cmdgif

import (
	"path/filepath"
	"testing"
)

func TestShellPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		match   []string
		noMatch []string
	}{
		{"plain suffix", "*.png", []string{"a.png"}, []string{"a.gif"}},
		{"unclosed bracket", "*.[gif", []string{"x.[gif"}, []string{"x.gif", "x.g"}},
		{"negation", "*.[!g]if", []string{"a.tif"}, []string{"a.gif"}},
		{"caret is literal", "*.[^x]", []string{"a.^", "a.x"}, []string{"a.y"}},
		{"leading dash is literal", "*.[-a]", []string{"a.-", "a.a"}, []string{"a.b"}},
		{"range", "*.[a-c]", []string{"a.b"}, []string{"a.d"}},
		{"backslash is literal", `*.\png`, []string{`a.\png`}, []string{"a.png"}},
		{"bang alone", "*.[!]", []string{"a.[!]"}, []string{"a.x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glob := shellPattern(tt.pattern)
			if _, err := filepath.Match(glob, ""); err != nil {
				t.Fatalf("shellPattern(%q) = %q is invalid: %v", tt.pattern, glob, err)
			}
			for _, name := range tt.match {
				if ok, _ := filepath.Match(glob, name); !ok {
					t.Errorf("%q (from %q) does not match %q", glob, tt.pattern, name)
				}
			}
			for _, name := range tt.noMatch {
				if ok, _ := filepath.Match(glob, name); ok {
					t.Errorf("%q (from %q) matches %q", glob, tt.pattern, name)
				}
			}
		})
	}
}
