package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/svgdoc/pkg/errors"
)

const testScene = `
width = 4
height = 3
unit = "mm"
title = "Test"

[[element]]
kind = "circle"
x = 10
y = 20
r = 5
attrs = "fill=red"

[[element]]
kind = "group"
id = "g1"
transform = [{ op = "translate", args = [1, 2] }]

[[element.children]]
kind = "line"
x1 = 0
y1 = 0
x2 = 10
y2 = 10
`

func TestDefaultOutput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"drawing.toml", "drawing.svg"},
		{"dir/drawing.toml", "dir/drawing.svg"},
		{"noext", "noext.svg"},
		{"-", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := defaultOutput(tt.input); got != tt.want {
				t.Errorf("defaultOutput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderDefaultOutput(t *testing.T) {
	in := writeFile(t, "drawing.toml", testScene)

	_, logs, err := execute(t, "render", in)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	out := strings.TrimSuffix(in, ".toml") + ".svg"
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	svg := string(data)
	for _, want := range []string{
		`<svg width="4mm" height="3mm" version="1.1"`,
		`<title>Test</title>`,
		`<circle cx="10" cy="20" r="5" fill="red" />`,
		`<g id="g1" transform="translate(1, 2)">`,
		`<line x1="0" y1="0" x2="10" y2="10" />`,
		"</g>\n</svg>\n",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing %q\n%s", want, svg)
		}
	}
	if !strings.Contains(logs, "Rendered "+out) {
		t.Errorf("logs = %q, want rendered message", logs)
	}
}

func TestRenderOverrides(t *testing.T) {
	in := writeFile(t, "drawing.toml", testScene)
	out := filepath.Join(t.TempDir(), "custom.svg")

	_, _, err := execute(t, "render", in, "-o", out,
		"--width", "8", "--unit", "px", "--standalone", "--title", "Other", "--desc", "Described")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	for _, want := range []string{
		`standalone="yes"`,
		`<svg width="8px" height="3px"`,
		`<title>Other</title>`,
		`<desc>Described</desc>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("output missing %q\n%s", want, svg)
		}
	}
}

func TestRenderMinify(t *testing.T) {
	in := writeFile(t, "drawing.toml", testScene)
	plain := filepath.Join(t.TempDir(), "plain.svg")
	small := filepath.Join(t.TempDir(), "small.svg")

	if _, _, err := execute(t, "render", in, "-o", plain); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, "render", in, "-o", small, "--minify"); err != nil {
		t.Fatal(err)
	}

	a, _ := os.ReadFile(plain)
	b, _ := os.ReadFile(small)
	if len(b) == 0 || len(b) >= len(a) {
		t.Errorf("minified size = %d, plain size = %d", len(b), len(a))
	}
	if !strings.Contains(string(b), "<circle") {
		t.Errorf("minified output lost content: %s", b)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
		args    []string
		code    errs.Code
	}{
		{
			name: "missing file",
			path: filepath.Join(t.TempDir(), "missing.toml"),
			code: errs.ErrCodeFileNotFound,
		},
		{
			name:    "unknown kind",
			content: "width = 1\nheight = 1\n[[element]]\nkind = \"star\"\n",
			code:    errs.ErrCodeInvalidScene,
		},
		{
			name:    "bad attributes",
			content: "width = 1\nheight = 1\n[[element]]\nkind = \"circle\"\nr = 1\nattrs = \"fill\"\n",
			code:    errs.ErrCodeInvalidScene,
		},
		{
			name:    "unknown unit flag",
			content: testScene,
			args:    []string{"--unit", "furlong"},
			code:    errs.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path
			if path == "" {
				path = writeFile(t, "bad.toml", tt.content)
			}
			args := append([]string{"render", path, "-o", filepath.Join(t.TempDir(), "out.svg")}, tt.args...)
			_, _, err := execute(t, args...)
			if got := errs.GetCode(err); got != tt.code {
				t.Errorf("error code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}
