package input

// Keys is a set of key states. Query a key with [Keys.Down].
//
// The zero value is an empty set with no keys held.
type Keys [KeyCount]bool

// NewKeys returns an empty key set.
func NewKeys() Keys {
	return Keys{}
}

// Down reports whether the key is in the set.
func (k *Keys) Down(key Key) bool {
	if key >= KeyCount {
		return false
	}
	return k[key]
}

// Set adds or removes a key. Called by the engine's event wiring;
// games normally only read.
func (k *Keys) Set(key Key, down bool) {
	if key >= KeyCount {
		return
	}
	k[key] = down
}

// Any reports whether any key in the set is down.
func (k *Keys) Any() bool {
	for _, down := range k {
		if down {
			return true
		}
	}
	return false
}

// Reset clears the whole set.
func (k *Keys) Reset() {
	*k = Keys{}
}
