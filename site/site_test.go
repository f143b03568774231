package site

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlCatalog = `
[[site]]
id = "a"
name = "Alpha"
url = "https://a.example"
color = "#ff0000"
category = "x"
position = [1, 2, 3]

[[site]]
name = "Beta"
url = "https://b.example"
color = "0x00ff00"
`

const yamlCatalog = `
sites:
  - id: a
    name: Alpha
    url: https://a.example
    color: "#0000ff"
  - id: b
    name: Beta
    url: https://b.example
    position: [0, 5, 0]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#4fc3f7", 0x4fc3f7},
		{"0xFF00aa", 0xff00aa},
		{" #000000 ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	if _, err := ParseColor("teal"); err == nil {
		t.Error("expected error for named color")
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := Color(0x12abef)
	assert.Equal(t, "#12abef", c.Hex())
	assert.Equal(t, c, FromColorful(c.Colorful()))
}

func TestStableIDIsDeterministic(t *testing.T) {
	a := StableID("Beta", "https://b.example")
	b := StableID("Beta", "https://b.example")
	c := StableID("Gamma", "https://b.example")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestLoadTOML(t *testing.T) {
	c, err := LoadFile(writeFile(t, "sites.toml", tomlCatalog))
	require.NoError(t, err)
	require.Len(t, c.Sites, 2)

	a := c.Sites[0]
	assert.Equal(t, "a", a.ID)
	assert.True(t, a.HasPosition)
	assert.Equal(t, float32(2), a.Position.Y)
	assert.Equal(t, Color(0xff0000), a.Color)

	b := c.Sites[1]
	assert.Equal(t, StableID("Beta", "https://b.example"), b.ID)
	assert.False(t, b.HasPosition)
	assert.Equal(t, Color(0x00ff00), b.Color)
}

func TestLoadYAML(t *testing.T) {
	c, err := LoadFile(writeFile(t, "sites.yaml", yamlCatalog))
	require.NoError(t, err)
	require.Len(t, c.Sites, 2)
	assert.Equal(t, Color(0x0000ff), c.Sites[0].Color)
	assert.Equal(t, Color(0xffffff), c.Sites[1].Color, "missing color defaults to white")
	assert.True(t, c.Sites[1].HasPosition)
}

func TestLoadRejectsBadPosition(t *testing.T) {
	_, err := LoadFile(writeFile(t, "bad.toml", "[[site]]\nname = \"x\"\nposition = [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := LoadFile(writeFile(t, "sites.json", "{}"))
	assert.Error(t, err)
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.NotEmpty(t, c.Sites)
	seen := make(map[string]bool)
	for _, n := range c.Sites {
		assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
	_, ok := c.ByID("home")
	assert.True(t, ok)
}

func TestEncodeTOMLRoundTrip(t *testing.T) {
	c := Default()
	var buf bytes.Buffer
	require.NoError(t, c.EncodeTOML(&buf))

	back, err := LoadFile(writeFile(t, "export.toml", buf.String()))
	require.NoError(t, err)
	require.Len(t, back.Sites, len(c.Sites))
	for i := range c.Sites {
		assert.Equal(t, *c.Sites[i], *back.Sites[i])
	}
}

func TestDBReplaceAndRead(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "sites.db"))
	require.NoError(t, err)
	defer db.Close()

	src := Default()
	require.NoError(t, db.Replace(src))

	got, err := db.Catalog()
	require.NoError(t, err)
	require.Len(t, got.Sites, len(src.Sites))
	for i := range src.Sites {
		assert.Equal(t, src.Sites[i].ID, got.Sites[i].ID, "order preserved")
		assert.Equal(t, src.Sites[i].HasPosition, got.Sites[i].HasPosition)
		assert.Equal(t, src.Sites[i].Color, got.Sites[i].Color)
	}

	// Replacing again must not duplicate rows
	require.NoError(t, db.Replace(src))
	again, err := db.Catalog()
	require.NoError(t, err)
	assert.Len(t, again.Sites, len(src.Sites))
}

func TestLoadResolvesSource(t *testing.T) {
	embedded, err := Load("")
	require.NoError(t, err)
	assert.Len(t, embedded.Sites, len(Default().Sites))

	path := filepath.Join(t.TempDir(), "sites.sqlite")
	db, err := OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Replace(Default()))
	require.NoError(t, db.Close())

	assert.True(t, IsDB(path))
	fromDB, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, fromDB.Sites, len(Default().Sites))

	fromFile, err := Load(writeFile(t, "sites.toml", tomlCatalog))
	require.NoError(t, err)
	assert.NotEmpty(t, fromFile.Sites)
}

func TestWatchFiresOnWrite(t *testing.T) {
	path := writeFile(t, "sites.toml", tomlCatalog)

	changed := make(chan struct{}, 4)
	stop, err := Watch(path, func() { changed <- struct{}{} })
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte(tomlCatalog+"\n"), 0o644))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the write")
	}

	stop()
	stop() // idempotent
}
