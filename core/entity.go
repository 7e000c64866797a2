package core

// Entity is a stable identifier for any simulated object
// Zero is never issued and marks an absent entity
type Entity uint64
