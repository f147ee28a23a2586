package svg

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttributesSet(t *testing.T) {
	var a Attributes
	a.Set("fill", "red")
	a.Set("stroke", "blue")
	a.Set("fill", "green")

	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if got, _ := a.Get("fill"); got != "green" {
		t.Errorf("Get(fill) = %q, want %q", got, "green")
	}
	if diff := cmp.Diff([]string{"fill", "stroke"}, a.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if got, want := a.String(), ` fill="green" stroke="blue"`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAttributesZeroValue(t *testing.T) {
	var a Attributes
	if a.String() != "" {
		t.Errorf("zero value renders %q, want empty", a.String())
	}
	if _, ok := a.Get("fill"); ok {
		t.Error("Get on zero value should miss")
	}
}

func TestAttributesDistinctKeys(t *testing.T) {
	a := Attrs("a", "1", "b", "2", "a", "3", "c", "4", "b", "5")
	want := ` a="3" b="5" c="4"`
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAttributesClone(t *testing.T) {
	a := Attrs("fill", "red")
	c := a.Clone()
	c.Set("fill", "blue")
	c.Set("stroke", "black")

	if got, _ := a.Get("fill"); got != "red" {
		t.Errorf("original changed: fill = %q", got)
	}
	if a.Len() != 1 {
		t.Errorf("original Len() = %d, want 1", a.Len())
	}
}

func TestAttrsOddArgs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Attrs with odd argument count should panic")
		}
	}()
	Attrs("fill")
}

func TestAttributesCopiesAreIndependent(t *testing.T) {
	tests := []struct {
		name        string
		base        Attributes
		key         string
		wantBase    string
		wantDerived string
	}{
		{
			name:        "new key on both",
			base:        Attrs("fill", "red"),
			key:         "stroke",
			wantBase:    ` fill="red" stroke="base"`,
			wantDerived: ` fill="red" stroke="derived"`,
		},
		{
			name:        "spare capacity",
			base:        Attrs("fill", "red", "stroke", "x", "opacity", "1"),
			key:         "stroke-width",
			wantBase:    ` fill="red" stroke="x" opacity="1" stroke-width="base"`,
			wantDerived: ` fill="red" stroke="x" opacity="1" stroke-width="derived"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := tt.base
			derived := base
			derived.Set(tt.key, "derived")
			base.Set(tt.key, "base")

			if got := base.String(); got != tt.wantBase {
				t.Errorf("base = %q, want %q", got, tt.wantBase)
			}
			if got := derived.String(); got != tt.wantDerived {
				t.Errorf("derived = %q, want %q", got, tt.wantDerived)
			}
		})
	}
}

func TestAttributesCopyOverwrite(t *testing.T) {
	base := Attrs("fill", "red", "stroke", "black")
	derived := base
	derived.Set("fill", "blue")

	if got, _ := base.Get("fill"); got != "red" {
		t.Errorf("base fill = %q after overwriting the copy, want red", got)
	}
	if got, _ := derived.Get("fill"); got != "blue" {
		t.Errorf("derived fill = %q, want blue", got)
	}
}

func TestSharedAttributesAcrossShapes(t *testing.T) {
	base := Attrs("stroke", "black")
	red := base
	red.Set("fill", "red")
	blue := base
	blue.Set("fill", "blue")

	d := New(1, 1)
	d.Add(Circle{R: 1, Attrs: red})
	d.Add(Circle{R: 2, Attrs: blue})
	d.Add(Circle{R: 3, Attrs: base})
	b, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		`<circle cx="0" cy="0" r="1" stroke="black" fill="red" />`,
		`<circle cx="0" cy="0" r="2" stroke="black" fill="blue" />`,
		`<circle cx="0" cy="0" r="3" stroke="black" />`,
	} {
		if !strings.Contains(string(b), want) {
			t.Errorf("output missing %q", want)
		}
	}
}
