package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is never emitted
	EventNone EventType = iota

	// EventRoomChangeRequest asks the game-state layer to swap the active room
	// Trigger: push resolver when the player walks into an unlocked door
	// Consumer: Game, PursuitSystem, Cues | Payload: *RoomChangePayload
	EventRoomChangeRequest

	// EventRoomEntered signals that a room became active
	// Trigger: World.EnterRoom
	// Consumer: PursuitSystem, PuzzleSystem | Payload: *RoomEnteredPayload
	EventRoomEntered

	// EventBlockPushed signals a pushable accepted a push
	// Trigger: push resolver on commit | Consumer: Cues | Payload: *BlockPushedPayload
	EventBlockPushed

	// EventHoleFilled signals a block finished falling into its hole
	// Trigger: MovementSystem | Consumer: Cues | Payload: *HoleFilledPayload
	EventHoleFilled

	// EventTorchToggled signals a torch changed state
	// Trigger: InputSystem | Consumer: Cues | Payload: *TorchToggledPayload
	EventTorchToggled

	// EventRoomSolved signals a puzzle checker accepted the room
	// Trigger: PuzzleSystem | Consumer: Cues | Payload: *RoomSolvedPayload
	EventRoomSolved

	// EventVictory signals every room is solved and the final door was crossed
	// Trigger: Game | Consumer: Game, Cues | Payload: nil
	EventVictory

	// EventPlayerCaught signals the pursuit agent touched the player
	// Trigger: PursuitSystem | Consumer: Game, Cues | Payload: *PlayerCaughtPayload
	EventPlayerCaught

	// EventPursuitState signals a pursuit state machine transition
	// Trigger: PursuitSystem | Consumer: diagnostics | Payload: *PursuitStatePayload
	EventPursuitState

	// EventGameReset signals a full restart
	// Trigger: Game.Restart | Consumer: PursuitSystem, PuzzleSystem | Payload: nil
	EventGameReset

	EventTypeCount
)

var typeNames = [EventTypeCount]string{
	"None", "RoomChangeRequest", "RoomEntered", "BlockPushed", "HoleFilled",
	"TorchToggled", "RoomSolved", "Victory", "PlayerCaught", "PursuitState", "GameReset",
}

func (t EventType) String() string {
	if t < 0 || t >= EventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	// Tick is the simulation tick the event was emitted in
	Tick uint64
}
