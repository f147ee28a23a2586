package scene

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/svgdoc/pkg/errors"
)

// Element kinds.
const (
	KindCircle   = "circle"
	KindEllipse  = "ellipse"
	KindLine     = "line"
	KindRect     = "rect"
	KindPolyline = "polyline"
	KindPolygon  = "polygon"
	KindText     = "text"
	KindGroup    = "group"
)

// Scene is a complete drawing: header fields plus top-level elements.
type Scene struct {
	Width      int       `toml:"width"`
	Height     int       `toml:"height"`
	Unit       string    `toml:"unit,omitempty"`
	Standalone bool      `toml:"standalone,omitempty"`
	Title      string    `toml:"title,omitempty"`
	Desc       string    `toml:"desc,omitempty"`
	ViewBox    *Box      `toml:"view_box,omitempty"`
	Elements   []Element `toml:"element,omitempty"`
}

// Box is a view box.
type Box struct {
	X      int `toml:"x"`
	Y      int `toml:"y"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Element is one shape or group. Only the fields relevant to Kind are read.
type Element struct {
	Kind      string      `toml:"kind"`
	ID        string      `toml:"id,omitempty"`
	X         int         `toml:"x,omitempty"`
	Y         int         `toml:"y,omitempty"`
	X1        int         `toml:"x1,omitempty"`
	Y1        int         `toml:"y1,omitempty"`
	X2        int         `toml:"x2,omitempty"`
	Y2        int         `toml:"y2,omitempty"`
	Width     int         `toml:"width,omitempty"`
	Height    int         `toml:"height,omitempty"`
	R         uint        `toml:"r,omitempty"`
	RX        uint        `toml:"rx,omitempty"`
	RY        uint        `toml:"ry,omitempty"`
	Points    [][]float64 `toml:"points,omitempty"`
	Text      string      `toml:"text,omitempty"`
	Attrs     string      `toml:"attrs,omitempty"`
	Transform []Op        `toml:"transform,omitempty"`
	Children  []Element   `toml:"children,omitempty"`
}

// Op is a single transform operation, e.g. {op = "rotate", args = [45]}.
type Op struct {
	Op   string    `toml:"op"`
	Args []float64 `toml:"args"`
}

// Decode reads a scene from TOML. Keys the schema does not know are an error.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidScene, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return &s, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "scene %s", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes the scene as TOML.
func (s *Scene) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}
