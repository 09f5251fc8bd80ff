package snapshotfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymerick/douceur/parser"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/property"
	"github.com/npillmayer/cascade/value"
)

// ErrUnknownSource is returned if an instance references a style source
// which the file does not define.
var ErrUnknownSource = errors.New("snapshotfile: unknown style source")

// ErrDuplicateID is returned if an identifier is defined twice.
var ErrDuplicateID = errors.New("snapshotfile: duplicate ID")

type document struct {
	Breakpoints []breakpoint `yaml:"breakpoints"`
	Sources     []source     `yaml:"sources"`
	Instances   []instance   `yaml:"instances"`
	Presets     []preset     `yaml:"presets"`
	TagDefaults []tagDefault `yaml:"tagDefaults"`
}

type breakpoint struct {
	ID       string  `yaml:"id"`
	MinWidth float64 `yaml:"minWidth"`
}

type block struct {
	Breakpoint string `yaml:"breakpoint"`
	State      string `yaml:"state"`
	CSS        string `yaml:"css"`
}

type source struct {
	ID           string  `yaml:"id"`
	Kind         string  `yaml:"kind"`
	Name         string  `yaml:"name"`
	Declarations []block `yaml:"declarations"`
}

type instance struct {
	ID        string     `yaml:"id"`
	Component string     `yaml:"component"`
	Tag       string     `yaml:"tag"`
	Styles    []string   `yaml:"styles"`
	Local     []block    `yaml:"local"`
	Children  []instance `yaml:"children"`
}

type preset struct {
	Component string `yaml:"component"`
	Tag       string `yaml:"tag"`
	State     string `yaml:"state"`
	CSS       string `yaml:"css"`
}

type tagDefault struct {
	Tag string `yaml:"tag"`
	CSS string `yaml:"css"`
}

// LoadFile reads a snapshot from a YAML file.
func LoadFile(path string) (*model.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshotfile: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a snapshot from a YAML document. Unknown fields are rejected.
func Load(r io.Reader) (*model.Snapshot, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("snapshotfile: %w", err)
	}
	l := &loader{
		b:       model.NewBuilder(),
		sources: make(map[string]bool),
		ids:     make(map[string]bool),
		bps:     map[string]bool{string(model.BaseBreakpoint): true},
	}
	if err := l.load(&doc); err != nil {
		return nil, err
	}
	return l.b.Build(), nil
}

type loader struct {
	b       *model.Builder
	sources map[string]bool
	ids     map[string]bool
	bps     map[string]bool
}

func (l *loader) load(doc *document) error {
	for _, bp := range doc.Breakpoints {
		if bp.ID == "" {
			return errors.New("snapshotfile: breakpoint without ID")
		}
		l.b.Breakpoint(model.BreakpointID(bp.ID), bp.MinWidth)
		l.bps[bp.ID] = true
	}
	for _, src := range doc.Sources {
		if err := l.source(src); err != nil {
			return err
		}
	}
	for _, inst := range doc.Instances {
		if err := l.instance("", inst); err != nil {
			return err
		}
	}
	for _, p := range doc.Presets {
		decls, err := declarations(p.CSS)
		if err != nil {
			return fmt.Errorf("snapshotfile: preset %s/%s: %w", p.Component, p.Tag, err)
		}
		for _, d := range decls {
			l.b.Preset(p.Component, p.Tag, p.State, d.Name, d.Value)
		}
	}
	for _, td := range doc.TagDefaults {
		if td.Tag == "" {
			return errors.New("snapshotfile: tag default without tag")
		}
		decls, err := declarations(td.CSS)
		if err != nil {
			return fmt.Errorf("snapshotfile: tag default %s: %w", td.Tag, err)
		}
		for _, d := range decls {
			l.b.TagDefault(strings.ToLower(td.Tag), d.Name, d.Value)
		}
	}
	return nil
}

func (l *loader) source(src source) error {
	if src.ID == "" {
		return errors.New("snapshotfile: style source without ID")
	}
	if l.sources[src.ID] {
		return fmt.Errorf("%w: style source %s", ErrDuplicateID, src.ID)
	}
	l.sources[src.ID] = true
	kind := model.TokenSource
	switch strings.ToLower(src.Kind) {
	case "", "token":
	case "local":
		kind = model.LocalSource
	default:
		return fmt.Errorf("snapshotfile: style source %s has unknown kind %q", src.ID, src.Kind)
	}
	id := model.StyleSourceID(src.ID)
	l.b.StyleSource(model.StyleSource{ID: id, Kind: kind, Name: src.Name})
	return l.blocks(id, src.Declarations)
}

func (l *loader) instance(parent model.InstanceID, inst instance) error {
	if inst.ID == "" {
		return errors.New("snapshotfile: instance without ID")
	}
	if l.ids[inst.ID] {
		return fmt.Errorf("%w: instance %s", ErrDuplicateID, inst.ID)
	}
	l.ids[inst.ID] = true
	id := model.InstanceID(inst.ID)
	if parent == "" {
		l.b.Instance(id, inst.Component, strings.ToLower(inst.Tag))
	} else {
		l.b.Child(parent, id, inst.Component, strings.ToLower(inst.Tag))
	}
	for _, s := range inst.Styles {
		if !l.sources[s] {
			return fmt.Errorf("%w: %s, attached to %s", ErrUnknownSource, s, inst.ID)
		}
		l.b.Attach(id, model.StyleSourceID(s))
	}
	if len(inst.Local) > 0 {
		local := model.StyleSourceID(inst.ID + "/local")
		l.b.StyleSource(model.StyleSource{ID: local, Kind: model.LocalSource})
		l.b.Attach(id, local)
		if err := l.blocks(local, inst.Local); err != nil {
			return err
		}
	}
	for _, ch := range inst.Children {
		if err := l.instance(id, ch); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) blocks(src model.StyleSourceID, blocks []block) error {
	for _, blk := range blocks {
		bp := blk.Breakpoint
		if bp == "" {
			bp = string(model.BaseBreakpoint)
		}
		if !l.bps[bp] {
			return fmt.Errorf("snapshotfile: style source %s uses undefined breakpoint %s", src, bp)
		}
		decls, err := declarations(blk.CSS)
		if err != nil {
			return fmt.Errorf("snapshotfile: style source %s: %w", src, err)
		}
		for _, d := range decls {
			l.b.Declare(model.Declaration{
				StyleSource: src,
				Breakpoint:  model.BreakpointID(bp),
				State:       blk.State,
				Property:    d.Name,
				Value:       d.Value,
			})
		}
	}
	return nil
}

// declarations splits a block of CSS declaration text into properties with
// parsed values. Shorthands are expanded.
func declarations(text string) ([]property.Longhand, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if !strings.HasSuffix(text, ";") && !strings.HasSuffix(text, "}") {
		text += ";" // the parser drops a last declaration without terminator
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, err
	}
	var r []property.Longhand
	for _, d := range decls {
		name := strings.TrimSpace(d.Property)
		if !property.IsCustom(name) {
			name = strings.ToLower(name)
		}
		if d.Important {
			tracer().Infof("snapshotfile: !important ignored for %s", name)
		}
		v, err := value.Parse(d.Value)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", name, err)
		}
		if property.IsShorthand(name) {
			lh, err := property.ExpandShorthand(name, v)
			if err != nil {
				return nil, err
			}
			r = append(r, lh...)
			continue
		}
		r = append(r, property.Longhand{Name: name, Value: v})
	}
	return r, nil
}
