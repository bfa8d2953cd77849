package level

import (
	"errors"
	"strconv"
)

// ErrRoomNotFound is returned by sources that hold no data for a room id
var ErrRoomNotFound = errors.New("room not found")

// Tile is one cell of a layer: a type tag, a display rune and a free-form property bag
// An empty or unrecognized tag is background decoration
type Tile struct {
	Type       string
	Glyph      rune
	Properties map[string]string
}

// Empty reports whether the tile carries neither a tag nor a glyph
func (t Tile) Empty() bool {
	return t.Type == "" && t.Glyph == 0
}

// Prop returns a property value, "" when absent
func (t Tile) Prop(key string) string {
	if t.Properties == nil {
		return ""
	}
	return t.Properties[key]
}

// BoolProp parses a boolean property, def when absent or malformed
func (t Tile) BoolProp(key string, def bool) bool {
	v, err := strconv.ParseBool(t.Prop(key))
	if err != nil {
		return def
	}
	return v
}

// RuneProp returns the first rune of a property, 0 when absent
func (t Tile) RuneProp(key string) rune {
	for _, r := range t.Prop(key) {
		return r
	}
	return 0
}

// RoomData is the parsed source of one room
// Layers are row-major: Layers[l][y*Width+x]
type RoomData struct {
	ID     int
	Width  int
	Height int
	Layers [][]Tile

	// Puzzle names the win-condition checker; Pattern parameterizes it
	Puzzle  string
	Pattern []int
	// Riddle is the hint shown below the board, empty for none
	Riddle  string
}

// At returns the tile of a layer at (x, y), zero Tile when out of range
func (r *RoomData) At(layer, x, y int) Tile {
	if layer < 0 || layer >= len(r.Layers) || x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return Tile{}
	}
	return r.Layers[layer][y*r.Width+x]
}

// Source supplies room data by id
type Source interface {
	Room(id int) (*RoomData, error)
}

// MapSource is an in-memory Source
type MapSource map[int]*RoomData

func (m MapSource) Room(id int) (*RoomData, error) {
	r, ok := m[id]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}
