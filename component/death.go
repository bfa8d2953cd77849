package component

// DeathComponent marks an entity for removal on the next room update
type DeathComponent struct{}
