package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

//go:embed rooms/*.toml
var embedded embed.FS

// FSSource serves rooms parsed from every *.toml file of a directory
type FSSource struct {
	rooms map[int]*RoomData
}

// NewFSSource parses all room documents under dir of fsys
func NewFSSource(fsys fs.FS, dir string) (*FSSource, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no room files in %q", dir)
	}
	sort.Strings(names)

	s := &FSSource{rooms: make(map[int]*RoomData, len(names))}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		room, err := ParseRoom(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if _, dup := s.rooms[room.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate room id %d", name, room.ID)
		}
		s.rooms[room.ID] = room
	}
	return s, nil
}

// Embedded returns the built-in 3x3 dungeon
func Embedded() (*FSSource, error) {
	return NewFSSource(embedded, "rooms")
}

// NewDirSource reads rooms from a directory on disk
func NewDirSource(dir string) (*FSSource, error) {
	return NewFSSource(os.DirFS(dir), ".")
}

func (s *FSSource) Room(id int) (*RoomData, error) {
	r, ok := s.rooms[id]
	if !ok {
		return nil, fmt.Errorf("room %d: %w", id, ErrRoomNotFound)
	}
	return r, nil
}

// IDs returns the known room ids in ascending order
func (s *FSSource) IDs() []int {
	ids := make([]int, 0, len(s.rooms))
	for id := range s.rooms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
