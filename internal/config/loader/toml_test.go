package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) Open(name string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[game]
words = 40
lineFill = 0.5

[theme]
correct = "#00ff00"
`)

	loader := NewTOMLLoaderWithFS(memfs, "/config.toml")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	game, ok := config["game"].(map[string]any)
	if !ok {
		t.Fatal("expected game to be a map")
	}
	if game["words"] != int64(40) {
		t.Errorf("words = %v (%T), want 40", game["words"], game["words"])
	}
	if game["lineFill"] != 0.5 {
		t.Errorf("lineFill = %v, want 0.5", game["lineFill"])
	}

	if val, ok := GetByPath(config, "theme.correct"); !ok || val != "#00ff00" {
		t.Errorf("theme.correct = %v, want '#00ff00'", val)
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	memfs := NewMemFS()
	loader := NewTOMLLoaderWithFS(memfs, "/nonexistent.toml")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", `
[game
words = 4
`)

	loader := NewTOMLLoaderWithFS(memfs, "/invalid.toml")
	_, err := loader.Load()
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want '/invalid.toml'", parseErr.Path)
	}
	if parseErr.Line == 0 {
		t.Error("expected a line number")
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	loader := &TOMLLoader{}

	content := `
format = "json"
words = 12
`
	config, err := loader.LoadFromReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if config["format"] != "json" {
		t.Errorf("format = %v, want 'json'", config["format"])
	}
	if config["words"] != int64(12) {
		t.Errorf("words = %v, want 12", config["words"])
	}
}

func TestForPath(t *testing.T) {
	memfs := NewMemFS()

	tests := []struct {
		path string
		want string
	}{
		{"/a/config.toml", "*loader.TOMLLoader"},
		{"/a/config.TOML", "*loader.TOMLLoader"},
		{"/a/config.yaml", "*loader.YAMLLoader"},
		{"/a/config.yml", "*loader.YAMLLoader"},
	}

	for _, tt := range tests {
		l, err := ForPath(memfs, tt.path)
		if err != nil {
			t.Errorf("ForPath(%q) error: %v", tt.path, err)
			continue
		}
		if got := fmt.Sprintf("%T", l); got != tt.want {
			t.Errorf("ForPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}

	if _, err := ForPath(memfs, "/a/config.ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ForPath(.ini) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestGetSetByPath(t *testing.T) {
	data := make(map[string]any)
	SetByPath(data, "game.words", 10)
	SetByPath(data, "game.tickRate", 20)
	SetByPath(data, "top", "x")

	if val, ok := GetByPath(data, "game.words"); !ok || val != 10 {
		t.Errorf("game.words = %v, want 10", val)
	}
	if val, ok := GetByPath(data, "game.tickRate"); !ok || val != 20 {
		t.Errorf("game.tickRate = %v, want 20", val)
	}
	if val, ok := GetByPath(data, "top"); !ok || val != "x" {
		t.Errorf("top = %v, want 'x'", val)
	}
	if _, ok := GetByPath(data, "game.missing"); ok {
		t.Error("expected missing path to be absent")
	}
	if _, ok := GetByPath(data, "top.nested"); ok {
		t.Error("expected path through a scalar to be absent")
	}
	if _, ok := GetByPath(nil, "game"); ok {
		t.Error("expected nil map to have no values")
	}
}

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name     string
		dst      map[string]any
		src      map[string]any
		expected map[string]any
	}{
		{
			name:     "nil dst",
			dst:      nil,
			src:      map[string]any{"a": 1},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "nil src",
			dst:      map[string]any{"a": 1},
			src:      nil,
			expected: map[string]any{"a": 1},
		},
		{
			name:     "simple merge",
			dst:      map[string]any{"a": 1},
			src:      map[string]any{"b": 2},
			expected: map[string]any{"a": 1, "b": 2},
		},
		{
			name:     "src overrides dst",
			dst:      map[string]any{"a": 1},
			src:      map[string]any{"a": 2},
			expected: map[string]any{"a": 2},
		},
		{
			name: "nested merge",
			dst: map[string]any{
				"game": map[string]any{
					"words": 4,
				},
			},
			src: map[string]any{
				"game": map[string]any{
					"tickRate": 30,
				},
			},
			expected: map[string]any{
				"game": map[string]any{
					"words":    4,
					"tickRate": 30,
				},
			},
		},
		{
			name: "nested override",
			dst: map[string]any{
				"game": map[string]any{
					"words": 4,
				},
			},
			src: map[string]any{
				"game": map[string]any{
					"words": 2,
				},
			},
			expected: map[string]any{
				"game": map[string]any{
					"words": 2,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DeepMerge(tt.dst, tt.src)
			if !mapsEqual(result, tt.expected) {
				t.Errorf("DeepMerge() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestClone(t *testing.T) {
	original := map[string]any{
		"string": "value",
		"int":    42,
		"nested": map[string]any{
			"deep": "data",
		},
		"array": []any{"a", "b", "c"},
	}

	cloned := Clone(original)

	// Modify original
	original["string"] = "changed"
	original["nested"].(map[string]any)["deep"] = "modified"
	original["array"].([]any)[0] = "x"

	// Cloned should be unchanged
	if cloned["string"] != "value" {
		t.Error("clone was affected by original modification")
	}
	if cloned["nested"].(map[string]any)["deep"] != "data" {
		t.Error("nested clone was affected by original modification")
	}
	if cloned["array"].([]any)[0] != "a" {
		t.Error("array clone was affected by original modification")
	}
}

func TestClone_Nil(t *testing.T) {
	if Clone(nil) != nil {
		t.Error("Clone(nil) should return nil")
	}
}

// mapsEqual compares two maps for equality (simple version for tests).
func mapsEqual(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			return false
		}
		switch ta := va.(type) {
		case map[string]any:
			tb, ok := vb.(map[string]any)
			if !ok || !mapsEqual(ta, tb) {
				return false
			}
		default:
			if va != vb {
				return false
			}
		}
	}
	return true
}
