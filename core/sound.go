package core

// SoundType represents a discrete audio cue requested by the simulation
type SoundType int

const (
	SoundLaunch  SoundType = iota // Projectile leaves the anchor
	SoundThrow                    // Low whoosh layered with launch
	SoundExplode                  // Impact-type detonation
	SoundThunk                    // Piercing embed or piercing target hit
	SoundReload                   // Idle weapon re-materialized
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundLaunch:  "launch",
	SoundThrow:   "throw",
	SoundExplode: "explode",
	SoundThunk:   "thunk",
	SoundReload:  "reload",
}

// String returns the cue's event name
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps an event name back to its cue
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
