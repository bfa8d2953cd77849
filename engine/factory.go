package engine

import (
	"log"

	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/core"
	"github.com/lixenwraith/hollow/level"
	"github.com/lixenwraith/hollow/physics"
)

// spawnFunc attaches kind-specific components; returning false degrades the tile to decoration
type spawnFunc func(w *World, r *Room, e core.Entity, p core.Point, t level.Tile) bool

// spawnRegistry maps entity kinds to their component setup
// Kinds without an entry get only kind and motion
var spawnRegistry = map[component.Kind]spawnFunc{
	component.KindDoor:       spawnDoor,
	component.KindHole:       spawnHole,
	component.KindMagicHole:  spawnHole,
	component.KindStone:      spawnBlock,
	component.KindMagicBlock: spawnBlock,
	component.KindTorch:      spawnTorch,
}

// buildRoom instantiates entities for every tile of every layer, row-major
func (w *World) buildRoom(data *level.RoomData) *Room {
	r := &Room{
		ID:         data.ID,
		Width:      data.Width,
		Height:     data.Height,
		Background: make([]rune, data.Width*data.Height),
		Puzzle:     data.Puzzle,
		Pattern:    data.Pattern,
		Riddle:     data.Riddle,
	}

	hasPlayer := false
	for layer := range data.Layers {
		for y := 0; y < data.Height; y++ {
			for x := 0; x < data.Width; x++ {
				t := data.At(layer, x, y)
				if t.Empty() {
					continue
				}
				if w.spawnTile(r, core.Pt(x, y), t, hasPlayer) {
					hasPlayer = true
				}
			}
		}
	}
	if !hasPlayer {
		r.Entities = append(r.Entities, w.Player)
	}
	return r
}

// spawnTile places one tile; returns true when the tile was the player's slot
func (w *World) spawnTile(r *Room, p core.Point, t level.Tile, hasPlayer bool) bool {
	kind := component.KindFromTag(t.Type)
	switch kind {
	case component.KindNone:
		if t.Type != "" {
			log.Printf("[factory] room %d: unknown tile type %q at %s, drawn as background", r.ID, t.Type, p)
		}
		w.setBackground(r, p, t.Glyph)
		return false

	case component.KindPlayer:
		if hasPlayer {
			return false
		}
		// The persistent player takes this slot in the list
		r.Spawn, r.HasSpawn = p, true
		r.Entities = append(r.Entities, w.Player)
		return true

	case component.KindMonster:
		r.AgentSpawn, r.HasAgentSpawn = p, true
		return false
	}

	e := w.CreateEntity()
	glyph := t.Glyph
	if glyph == 0 {
		glyph = defaultGlyph(kind)
	}
	w.Components.Kind.Set(e, component.KindComponent{Kind: kind, Glyph: glyph})

	if spawn, ok := spawnRegistry[kind]; ok && !spawn(w, r, e, p, t) {
		log.Printf("[factory] room %d: malformed %s at %s, drawn as background", r.ID, kind, p)
		w.Components.removeAll(e)
		w.setBackground(r, p, glyph)
		return false
	}

	var m component.MotionComponent
	physics.Place(&m, p)
	w.Components.Motion.Set(e, m)
	r.Entities = append(r.Entities, e)
	return false
}

func (w *World) setBackground(r *Room, p core.Point, glyph rune) {
	if glyph != 0 && p.In(r.Width, r.Height) {
		r.Background[p.Y*r.Width+p.X] = glyph
	}
}

func spawnDoor(w *World, r *Room, e core.Entity, p core.Point, t level.Tile) bool {
	side := core.SideForCell(p, r.Width, r.Height)
	if side == core.SideNone {
		// Interior doors lead nowhere
		w.Components.Kind.Set(e, component.KindComponent{Kind: component.KindWall, Glyph: defaultGlyph(component.KindWall)})
		return true
	}
	final := t.BoolProp("final", false)
	w.Components.Door.Set(e, component.DoorComponent{
		Side:      side,
		RoomDelta: side.RoomDelta(),
		// Final doors always start locked
		Locked: final || t.BoolProp("locked", r.Puzzle != "none"),
		Final:  final,
	})
	return true
}

func spawnHole(w *World, r *Room, e core.Entity, p core.Point, t level.Tile) bool {
	symbol := t.RuneProp("symbol")
	if t.Type == "magic-hole" && symbol == 0 {
		return false
	}
	w.Components.Hole.Set(e, component.HoleComponent{
		Symbol: symbol,
		Filled: t.BoolProp("filled", false),
	})
	return true
}

func spawnBlock(w *World, r *Room, e core.Entity, p core.Point, t level.Tile) bool {
	symbol := t.RuneProp("symbol")
	if t.Type == "magic-block" && symbol == 0 {
		return false
	}
	w.Components.Block.Set(e, component.BlockComponent{Symbol: symbol})
	return true
}

func spawnTorch(w *World, r *Room, e core.Entity, p core.Point, t level.Tile) bool {
	index := 0
	for _, other := range r.Entities {
		if w.Components.Torch.Has(other) {
			index++
		}
	}
	w.Components.Torch.Set(e, component.TorchComponent{
		Lit:   t.BoolProp("lit", false),
		Index: index,
	})
	return true
}

func defaultGlyph(k component.Kind) rune {
	switch k {
	case component.KindWall:
		return '#'
	case component.KindPillar:
		return 'I'
	case component.KindTorch:
		return 'T'
	case component.KindDoor:
		return 'D'
	case component.KindHole, component.KindMagicHole:
		return 'O'
	case component.KindStone:
		return 'o'
	case component.KindForeground:
		return '~'
	}
	return '?'
}
