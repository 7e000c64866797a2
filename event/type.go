package event

// EventType represents the type of simulation event
type EventType int

const (
	// === Input Event ===

	// EventTriggerDown starts charging
	// Trigger: pointer press on the play field
	// Consumer: ChargeSystem | Payload: *PointerPayload
	EventTriggerDown EventType = iota

	// EventTriggerUp releases the charged shot
	// Trigger: pointer release
	// Consumer: ChargeSystem | Payload: nil
	EventTriggerUp

	// EventPointerMove updates the aim pointer
	// Trigger: pointer motion
	// Consumer: ChargeSystem | Payload: *PointerPayload
	EventPointerMove

	// EventWeaponSwitch requests a weapon kind change
	// Trigger: weapon keys or HUD buttons
	// Consumer: ChargeSystem | Payload: *WeaponSwitchPayload
	EventWeaponSwitch

	// EventResize updates the viewport aspect ratio used for aim rays
	// Trigger: terminal resize
	// Consumer: CameraSystem | Payload: *ResizePayload
	EventResize

	// === Timed Event ===

	// EventTargetSpawnRequest adds one freshly randomized target
	// Trigger: Scheduler, TargetRespawnDelay after a destruction
	// Consumer: TargetSystem | Payload: nil
	EventTargetSpawnRequest
)

var typeNames = map[EventType]string{
	EventTriggerDown:        "trigger_down",
	EventTriggerUp:          "trigger_up",
	EventPointerMove:        "pointer_move",
	EventWeaponSwitch:       "weapon_switch",
	EventResize:             "resize",
	EventTargetSpawnRequest: "target_spawn_request",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is one queued event stamped with the tick it was queued on
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}
