package component

// Kind is the closed set of entity variants
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindStone
	KindMagicBlock
	KindWall
	KindPillar
	KindTorch
	KindDoor
	KindHole
	KindMagicHole
	KindForeground
	KindMonster
	KindCount
)

// MovementClass governs how the push resolver treats an entity
type MovementClass uint8

const (
	// ClassStatic is collidable and never moves
	ClassStatic MovementClass = iota
	// ClassPushable is collidable and moves when pushed
	ClassPushable
	// ClassPlayerControlled is the input-driven agent
	ClassPlayerControlled
	// ClassForeground is non-collidable decoration drawn above the player
	ClassForeground
	// ClassHole blocks until filled by a matching pushable
	ClassHole
	// ClassPathingAgent moves on its own schedule outside the push protocol
	ClassPathingAgent
)

var kindClassLUT = [KindCount]MovementClass{
	KindNone:       ClassForeground,
	KindPlayer:     ClassPlayerControlled,
	KindStone:      ClassPushable,
	KindMagicBlock: ClassPushable,
	KindWall:       ClassStatic,
	KindPillar:     ClassStatic,
	KindTorch:      ClassStatic,
	KindDoor:       ClassStatic,
	KindHole:       ClassHole,
	KindMagicHole:  ClassHole,
	KindForeground: ClassForeground,
	KindMonster:    ClassPathingAgent,
}

var kindNames = [KindCount]string{
	"none", "player", "stone", "magic-block", "wall", "pillar", "torch",
	"door", "hole", "magic-hole", "foreground", "monster",
}

// Class returns the movement class of the kind
func (k Kind) Class() MovementClass {
	if k >= KindCount {
		return ClassForeground
	}
	return kindClassLUT[k]
}

func (k Kind) String() string {
	if k >= KindCount {
		return "invalid"
	}
	return kindNames[k]
}

// KindFromTag maps a tile type tag to a kind, KindNone when unrecognized
func KindFromTag(tag string) Kind {
	for k := KindPlayer; k < KindCount; k++ {
		if kindNames[k] == tag {
			return k
		}
	}
	return KindNone
}

// KindComponent identifies the variant and its display rune
type KindComponent struct {
	Kind  Kind
	Glyph rune
}
