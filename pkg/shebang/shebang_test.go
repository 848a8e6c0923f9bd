package shebang

import (
	"strings"
	"testing"

	"github.com/pylaunch/pylaunch/pkg/version"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   version.Requested
		wantOK bool
	}{
		{"missing shebang comment", "/usr/bin/python", version.Requested{}, false},
		{"missing exclamation point", "# /usr/bin/python", version.Requested{}, false},
		{"missing octothorpe", "! /usr/bin/python", version.Requested{}, false},
		{"non-Python shebang", "#! /bin/sh", version.Requested{}, false},
		{"typical env python", "#! /usr/bin/env python", version.Any(), true},
		{"typical python", "#! /usr/bin/python", version.Any(), true},
		{"usr local python", "#! /usr/local/bin/python", version.Any(), true},
		{"bare python", "#! python", version.Any(), true},
		{"env python with version", "#! /usr/bin/env python3.7", version.Exact(3, 7), true},
		{"python with version", "#! /usr/bin/python3.7", version.Exact(3, 7), true},
		{"bare python with version", "#! python3.7", version.Exact(3, 7), true},
		{"major only", "#! python3", version.MajorOnly(3), true},
		{"no space after marker", "#!/usr/bin/python", version.Any(), true},
		{"micro version rejected", "#! /usr/bin/env python3.7.2", version.Requested{}, false},
		{"interpreter arguments rejected", "#! /usr/bin/env python3 -u", version.Requested{}, false},
		{"empty input", "", version.Requested{}, false},
		{"marker only", "#!", version.Requested{}, false},
		{"trailing newline", "#! python3.7\nprint('hi')\n", version.Exact(3, 7), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(strings.NewReader(tt.line))
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParse_InvalidUTF8(t *testing.T) {
	input := []byte{0x23, 0x21, 0xc0, 0xaf}
	if _, ok := Parse(strings.NewReader(string(input))); ok {
		t.Error("Parse accepted invalid UTF-8 after the shebang marker")
	}
}
