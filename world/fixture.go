package world

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture describes a world in YAML:
//
//	root:
//	  children:
//	    - name: Box
//	      tag: prop
//	      objectRoot: true
//	      components:
//	        - type: Counter
//	          members:
//	            - {name: Count, int: 3}
//	users:
//	  - name: alice
//	    children:
//	      - name: Head
type Fixture struct {
	Root  FixtureSlot   `yaml:"root"`
	Users []FixtureUser `yaml:"users"`
}

type FixtureSlot struct {
	Name       string             `yaml:"name"`
	Tag        string             `yaml:"tag"`
	ObjectRoot bool               `yaml:"objectRoot"`
	Components []FixtureComponent `yaml:"components"`
	Children   []FixtureSlot      `yaml:"children"`
}

type FixtureComponent struct {
	Type    string          `yaml:"type"`
	Members []FixtureMember `yaml:"members"`
}

// FixtureMember sets exactly one of its value fields.
type FixtureMember struct {
	Name      string   `yaml:"name"`
	Int       *int32   `yaml:"int"`
	Float     *float32 `yaml:"float"`
	Double    *float64 `yaml:"double"`
	Reference bool     `yaml:"reference"`
}

type FixtureUser struct {
	Name     string        `yaml:"name"`
	Children []FixtureSlot `yaml:"children"`
}

func LoadFixtureFile(path string, opts ...Option) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := LoadFixture(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not load fixture %s: %w", path, err)
	}
	return w, nil
}

func LoadFixture(r io.Reader, opts ...Option) (*World, error) {
	var fx Fixture
	if err := yaml.NewDecoder(r).Decode(&fx); err != nil && err != io.EOF {
		return nil, err
	}
	return fx.Build(opts...)
}

// Build creates a new world from the fixture.
func (fx *Fixture) Build(opts ...Option) (*World, error) {
	w := New(opts...)
	if fx.Root.Name != "" {
		w.root.SetName(fx.Root.Name)
	}
	if err := fx.Root.populate(w.root); err != nil {
		return nil, err
	}

	for _, fu := range fx.Users {
		if fu.Name == "" {
			return nil, fmt.Errorf("user without a name")
		}
		u := w.AddUser(fu.Name)
		for _, fc := range fu.Children {
			if err := fc.build(u.root.slot); err != nil {
				return nil, err
			}
		}
	}
	return w, nil
}

func (fs FixtureSlot) build(parent *Slot) error {
	return fs.populate(parent.AddChild(fs.Name))
}

func (fs FixtureSlot) populate(s *Slot) error {
	if fs.Tag != "" {
		s.SetTag(fs.Tag)
	}
	if fs.ObjectRoot {
		s.MarkObjectRoot(true)
	}
	for _, fc := range fs.Components {
		if fc.Type == "" {
			return fmt.Errorf("slot %q: component without a type", fs.Name)
		}
		c := s.AttachComponent(fc.Type)
		for _, fm := range fc.Members {
			if err := fm.add(c); err != nil {
				return fmt.Errorf("slot %q: component %s: %w", fs.Name, fc.Type, err)
			}
		}
	}
	for _, child := range fs.Children {
		if err := child.build(s); err != nil {
			return err
		}
	}
	return nil
}

func (fm FixtureMember) add(c *Component) error {
	set := 0
	for _, ok := range []bool{fm.Int != nil, fm.Float != nil, fm.Double != nil, fm.Reference} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("member %q must set exactly one of int, float, double or reference", fm.Name)
	}

	switch {
	case fm.Int != nil:
		c.AddInt(fm.Name, *fm.Int)
	case fm.Float != nil:
		c.AddFloat(fm.Name, *fm.Float)
	case fm.Double != nil:
		c.AddDouble(fm.Name, *fm.Double)
	default:
		c.AddReference(fm.Name, 0)
	}
	return nil
}
