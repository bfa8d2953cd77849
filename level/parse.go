package level

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// roomFile is the TOML layout of a room
type roomFile struct {
	ID      int               `toml:"id"`
	Puzzle  string            `toml:"puzzle"`
	Pattern []int             `toml:"pattern"`
	Riddle  string            `toml:"riddle"`
	Rows    []string          `toml:"rows"`
	Overlay []string          `toml:"overlay"`
	Legend  map[string]string `toml:"legend"`
	Tiles   []tileFile        `toml:"tiles"`
}

type tileFile struct {
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Layer  int    `toml:"layer"`
	Type   string `toml:"type"`
	Symbol string `toml:"symbol"`
	Locked *bool  `toml:"locked"`
	Final  *bool  `toml:"final"`
}

// defaultLegend maps ASCII runes to tile type tags
var defaultLegend = map[rune]string{
	'#': "wall",
	'D': "door",
	'o': "stone",
	'O': "hole",
	'@': "player",
	'M': "monster",
	'T': "torch",
	'I': "pillar",
	'~': "foreground",
}

// ParseRoom decodes a TOML room document
func ParseRoom(data []byte) (*RoomData, error) {
	var f roomFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode room: %w", err)
	}
	if len(f.Rows) == 0 {
		return nil, fmt.Errorf("room %d: no rows", f.ID)
	}

	legend := make(map[rune]string, len(defaultLegend)+len(f.Legend))
	for r, tag := range defaultLegend {
		legend[r] = tag
	}
	for key, tag := range f.Legend {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("room %d: legend key %q must be a single rune", f.ID, key)
		}
		legend[r] = tag
	}

	room := &RoomData{
		ID:      f.ID,
		Width:   utf8.RuneCountInString(f.Rows[0]),
		Height:  len(f.Rows),
		Puzzle:  f.Puzzle,
		Pattern: f.Pattern,
		Riddle:  f.Riddle,
	}

	base, err := parseLayer(f.ID, f.Rows, room.Width, legend)
	if err != nil {
		return nil, err
	}
	room.Layers = append(room.Layers, base)

	if len(f.Overlay) > 0 {
		if len(f.Overlay) != room.Height {
			return nil, fmt.Errorf("room %d: overlay has %d rows, want %d", f.ID, len(f.Overlay), room.Height)
		}
		overlay, err := parseLayer(f.ID, f.Overlay, room.Width, legend)
		if err != nil {
			return nil, err
		}
		room.Layers = append(room.Layers, overlay)
	}

	for _, tf := range f.Tiles {
		if tf.Layer < 0 || tf.Layer >= len(room.Layers) || tf.X < 0 || tf.Y < 0 || tf.X >= room.Width || tf.Y >= room.Height {
			return nil, fmt.Errorf("room %d: tile override (%d,%d) layer %d out of range", f.ID, tf.X, tf.Y, tf.Layer)
		}
		applyOverride(&room.Layers[tf.Layer][tf.Y*room.Width+tf.X], tf)
	}

	return room, nil
}

func parseLayer(id int, rows []string, width int, legend map[rune]string) ([]Tile, error) {
	tiles := make([]Tile, 0, width*len(rows))
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("room %d: row %d has %d cells, want %d", id, y, n, width)
		}
		for _, r := range row {
			tiles = append(tiles, tileFor(r, legend))
		}
	}
	return tiles, nil
}

// tileFor resolves a rune: legend first, then letters as magic blocks/holes
func tileFor(r rune, legend map[rune]string) Tile {
	if r == '.' || r == ' ' {
		return Tile{}
	}
	if tag, ok := legend[r]; ok {
		return Tile{Type: tag, Glyph: r}
	}
	switch {
	case r >= 'a' && r <= 'z':
		return Tile{Type: "magic-block", Glyph: r, Properties: map[string]string{"symbol": string(r)}}
	case r >= 'A' && r <= 'Z':
		return Tile{Type: "magic-hole", Glyph: r, Properties: map[string]string{"symbol": string(unicode.ToLower(r))}}
	}
	// Unknown rune: decoration only
	return Tile{Glyph: r}
}

func applyOverride(t *Tile, tf tileFile) {
	if tf.Type != "" {
		t.Type = tf.Type
	}
	if t.Properties == nil {
		t.Properties = make(map[string]string)
	}
	if tf.Symbol != "" {
		t.Properties["symbol"] = tf.Symbol
	}
	if tf.Locked != nil {
		t.Properties["locked"] = fmt.Sprint(*tf.Locked)
	}
	if tf.Final != nil {
		t.Properties["final"] = fmt.Sprint(*tf.Final)
	}
}
