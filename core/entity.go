package core

// Entity is a stable handle for a simulated object
// Handles are allocated in creation order; lower handles were created earlier
// 0 is reserved for "no entity"
type Entity uint64

// EntityNone is the zero handle
const EntityNone Entity = 0
