package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// PartSpec is the static descriptor of one mesh file belonging to every size variant.
type PartSpec struct {
	File  string `yaml:"file"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

// Catalog lists the selectable size variants, the parts each variant is made of, and which
// parts form the left and right finger groups.
type Catalog struct {
	Sizes       []string   `yaml:"sizes"`
	DefaultSize string     `yaml:"default_size"`
	Parts       []PartSpec `yaml:"parts"`
	LeftFinger  []string   `yaml:"left_finger"`
	RightFinger []string   `yaml:"right_finger"`
}

// Side says which finger group a part belongs to.
type Side int

const (
	Static Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "static"
}

// Default returns the built-in gripper catalog.
func Default() Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads and validates a catalog YAML file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate checks that sizes and parts are present, part files are unique, finger entries name
// catalog parts, and no part belongs to both finger groups.
func (c Catalog) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("catalog: no sizes")
	}
	if len(c.Parts) == 0 {
		return fmt.Errorf("catalog: no parts")
	}
	files := make(map[string]bool, len(c.Parts))
	for _, p := range c.Parts {
		if p.File == "" {
			return fmt.Errorf("catalog: part with empty file")
		}
		if files[p.File] {
			return fmt.Errorf("catalog: duplicate part %q", p.File)
		}
		files[p.File] = true
	}
	left := make(map[string]bool, len(c.LeftFinger))
	for _, f := range c.LeftFinger {
		if !files[f] {
			return fmt.Errorf("catalog: left finger part %q is not in parts", f)
		}
		left[f] = true
	}
	for _, f := range c.RightFinger {
		if !files[f] {
			return fmt.Errorf("catalog: right finger part %q is not in parts", f)
		}
		if left[f] {
			return fmt.Errorf("catalog: part %q is in both finger groups", f)
		}
	}
	if c.DefaultSize != "" && c.IndexOf(c.DefaultSize) < 0 {
		return fmt.Errorf("catalog: default size %q is not in sizes", c.DefaultSize)
	}
	return nil
}

// Clone returns a deep copy so the caller can hold descriptors nobody else can mutate.
func (c Catalog) Clone() Catalog {
	var out Catalog
	if err := copier.CopyWithOption(&out, &c, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("catalog: clone: %v", err))
	}
	return out
}

// IndexOf returns the index of size in Sizes, or -1.
func (c Catalog) IndexOf(size string) int {
	for i, s := range c.Sizes {
		if s == size {
			return i
		}
	}
	return -1
}

// ClampIndex clamps i into [0, len(Sizes)-1].
func (c Catalog) ClampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(c.Sizes)-1 {
		return len(c.Sizes) - 1
	}
	return i
}

// SideOf reports which finger group the part file belongs to.
func (c Catalog) SideOf(file string) Side {
	for _, f := range c.LeftFinger {
		if f == file {
			return Left
		}
	}
	for _, f := range c.RightFinger {
		if f == file {
			return Right
		}
	}
	return Static
}

// StartIndex is the index of DefaultSize, or the middle size when unset.
func (c Catalog) StartIndex() int {
	if i := c.IndexOf(c.DefaultSize); i >= 0 {
		return i
	}
	return len(c.Sizes) / 2
}
