package catalogmodel

// UnknownPolicy controls how input keys that match no declared field are handled.
type UnknownPolicy int

const (
	UnknownPassthrough UnknownPolicy = iota // Keep unknown keys as extra attributes and warn.
	UnknownStrip                            // Drop unknown keys and warn.
	UnknownStrict                           // Reject unknown keys with an error.
)

func (p UnknownPolicy) String() string {
	switch p {
	case UnknownPassthrough:
		return "passthrough"
	case UnknownStrip:
		return "strip"
	case UnknownStrict:
		return "strict"
	}
	return "unknown"
}

// Presence is the bit flag recorded for each declared field during construction.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was null.
	PresenceDefaultApplied                      // Default value was applied.
)
