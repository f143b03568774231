package site

import (
	_ "embed"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed default.toml
var defaultCatalog []byte

// Catalog is the ordered site list handed to the scene at mount
type Catalog struct {
	Sites []*Node
}

// record is the on-disk shape shared by TOML and YAML catalogs
type record struct {
	ID          string    `toml:"id" yaml:"id"`
	Name        string    `toml:"name" yaml:"name"`
	URL         string    `toml:"url" yaml:"url"`
	Color       string    `toml:"color" yaml:"color"`
	Position    []float32 `toml:"position" yaml:"position"`
	Category    string    `toml:"category" yaml:"category"`
	Description string    `toml:"description" yaml:"description"`
}

type file struct {
	Sites []record `toml:"site" yaml:"sites"`
}

// Default returns the embedded catalog
func Default() *Catalog {
	c, err := decodeTOML(defaultCatalog)
	if err != nil {
		panic(fmt.Errorf("embedded catalog: %w", err))
	}
	return c
}

// LoadFile reads a catalog, format chosen by extension
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c *Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		c, err = decodeTOML(data)
	case ".yaml", ".yml":
		c, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.Printf("Loaded %d site(s) from %s", len(c.Sites), path)
	return c, nil
}

func decodeTOML(data []byte) (*Catalog, error) {
	var f file
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, err
	}
	return fromRecords(f.Sites)
}

func decodeYAML(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return fromRecords(f.Sites)
}

func fromRecords(recs []record) (*Catalog, error) {
	c := &Catalog{Sites: make([]*Node, 0, len(recs))}
	for i, r := range recs {
		n, err := r.node()
		if err != nil {
			return nil, fmt.Errorf("site %d (%s): %w", i, r.Name, err)
		}
		c.Sites = append(c.Sites, n)
	}
	return c, nil
}

func (r record) node() (*Node, error) {
	n := &Node{
		ID:          r.ID,
		Name:        r.Name,
		URL:         r.URL,
		Category:    r.Category,
		Description: r.Description,
	}
	if n.ID == "" {
		n.ID = StableID(r.Name, r.URL)
	}
	if r.Color != "" {
		col, err := ParseColor(r.Color)
		if err != nil {
			return nil, err
		}
		n.Color = col
	} else {
		n.Color = 0xffffff
	}
	switch len(r.Position) {
	case 0:
	case 3:
		n.Position = math32.Vec3(r.Position[0], r.Position[1], r.Position[2])
		n.HasPosition = true
	default:
		return nil, fmt.Errorf("position needs 3 components, got %d", len(r.Position))
	}
	return n, nil
}

// records converts nodes back to the on-disk shape
func (c *Catalog) records() []record {
	out := make([]record, len(c.Sites))
	for i, n := range c.Sites {
		r := record{
			ID:          n.ID,
			Name:        n.Name,
			URL:         n.URL,
			Color:       n.Color.Hex(),
			Category:    n.Category,
			Description: n.Description,
		}
		if n.HasPosition {
			r.Position = []float32{n.Position.X, n.Position.Y, n.Position.Z}
		}
		out[i] = r
	}
	return out
}

// EncodeTOML writes the catalog in the TOML catalog format
func (c *Catalog) EncodeTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(file{Sites: c.records()})
}

// ByID returns the site with the given id
func (c *Catalog) ByID(id string) (*Node, bool) {
	for _, n := range c.Sites {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// IsDB reports whether path names a SQLite catalog
func IsDB(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Load resolves a catalog source: empty for the embedded catalog, SQLite by extension, else a file
func Load(path string) (*Catalog, error) {
	switch {
	case path == "":
		return Default(), nil
	case IsDB(path):
		db, err := OpenDB(path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return db.Catalog()
	default:
		return LoadFile(path)
	}
}
