package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgdoc/pkg/observability"
)

func TestLogHooks(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("boom")

	tests := []struct {
		name string
		emit func(observability.RenderHooks)
		want []string
	}{
		{
			name: "scene load",
			emit: func(h observability.RenderHooks) { h.OnSceneLoad(ctx, "a.toml", 4, nil) },
			want: []string{"Loaded scene", "source=a.toml", "elements=4"},
		},
		{
			name: "scene load failure",
			emit: func(h observability.RenderHooks) { h.OnSceneLoad(ctx, "a.toml", 0, failure) },
			want: []string{"Scene load failed", "err=boom"},
		},
		{
			name: "build",
			emit: func(h observability.RenderHooks) { h.OnBuild(ctx, 7, time.Millisecond, nil) },
			want: []string{"Built document", "elements=7", "took=1ms"},
		},
		{
			name: "write",
			emit: func(h observability.RenderHooks) { h.OnWrite(ctx, "out.svg", 512, 0, nil) },
			want: []string{"Wrote document", "path=out.svg", "bytes=512"},
		},
		{
			name: "write failure",
			emit: func(h observability.RenderHooks) { h.OnWrite(ctx, "out.svg", 0, 0, failure) },
			want: []string{"Write failed", "path=out.svg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(New(&buf, log.DebugLevel).Hooks())

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("log %q missing %q", out, w)
				}
			}
		})
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, log.InfoLevel).Hooks().OnBuild(context.Background(), 1, 0, nil)

	if buf.Len() != 0 {
		t.Errorf("hooks logged at info level: %q", buf.String())
	}
}

func TestRenderReportsToHooks(t *testing.T) {
	observability.Reset()
	t.Cleanup(observability.Reset)

	var buf bytes.Buffer
	c := New(&buf, log.DebugLevel)
	observability.SetRenderHooks(c.Hooks())

	in := writeFile(t, "drawing.toml", testScene)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"render", in, "-o", in + ".svg"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Loaded scene", "Built document", "Wrote document"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q\n%s", want, out)
		}
	}
}
