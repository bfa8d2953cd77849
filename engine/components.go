package engine

import (
	"github.com/lixenwraith/hollow/component"
	"github.com/lixenwraith/hollow/core"
)

// ComponentStore provides typed component stores
type ComponentStore struct {
	Kind   *Store[component.KindComponent]
	Motion *Store[component.MotionComponent]
	Door   *Store[component.DoorComponent]
	Hole   *Store[component.HoleComponent]
	Block  *Store[component.BlockComponent]
	Torch  *Store[component.TorchComponent]
	Death  *Store[component.DeathComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Kind:   NewStore[component.KindComponent](),
		Motion: NewStore[component.MotionComponent](),
		Door:   NewStore[component.DoorComponent](),
		Hole:   NewStore[component.HoleComponent](),
		Block:  NewStore[component.BlockComponent](),
		Torch:  NewStore[component.TorchComponent](),
		Death:  NewStore[component.DeathComponent](),
	}
}

// removeAll strips every component from e
func (cs *ComponentStore) removeAll(e core.Entity) {
	cs.Kind.Remove(e)
	cs.Motion.Remove(e)
	cs.Door.Remove(e)
	cs.Hole.Remove(e)
	cs.Block.Remove(e)
	cs.Torch.Remove(e)
	cs.Death.Remove(e)
}

// KindOf returns the kind of e, KindNone when e has none
func (cs *ComponentStore) KindOf(e core.Entity) component.Kind {
	k, ok := cs.Kind.Get(e)
	if !ok {
		return component.KindNone
	}
	return k.Kind
}
