package parameter

import "time"

// Pursuit Agent
const (
	// MonsterSpeedFactor scales EntitySpeed for the chasing agent
	MonsterSpeedFactor = 0.3

	// MonsterStartRoom is the room the agent haunts at game start
	MonsterStartRoom = 9

	// MonsterMoveInterval is the period of the relocation roll
	MonsterMoveInterval = 15 * time.Second

	// MonsterMoveChance is the probability a relocation roll succeeds
	MonsterMoveChance = 0.3

	// MonsterAlignDelay is the pause before the agent emerges from a door
	MonsterAlignDelay = 1 * time.Second

	// MonsterChaseDistance is the range (units) within which the agent follows the player through a door
	MonsterChaseDistance = 200.0

	// MonsterCatchCooldown keeps the agent out of the player's room after a catch
	MonsterCatchCooldown = 60 * time.Second

	// MonsterRelocateCooldown keeps the agent from doubling back into the room it just left
	MonsterRelocateCooldown = 5 * time.Second
)
