package model

import (
	"fmt"
	"strings"
)

// Finger identifies one of the ten fingers. The numeric code is persisted in
// the finger column and must never be renumbered.
type Finger uint8

const (
	FingerRightThumb Finger = iota
	FingerRightIndex
	FingerRightMiddle
	FingerRightRing
	FingerRightPinky
	FingerLeftThumb
	FingerLeftIndex
	FingerLeftMiddle
	FingerLeftRing
	FingerLeftPinky
)

// FingerCount is the number of known fingers.
const FingerCount = 10

var fingerNames = [FingerCount]string{
	"RIGHT_THUMB",
	"RIGHT_INDEX",
	"RIGHT_MIDDLE",
	"RIGHT_RING",
	"RIGHT_PINKY",
	"LEFT_THUMB",
	"LEFT_INDEX",
	"LEFT_MIDDLE",
	"LEFT_RING",
	"LEFT_PINKY",
}

var fingerDisplayNames = [FingerCount]string{
	"right thumb",
	"right index finger",
	"right middle finger",
	"right ring finger",
	"right little finger",
	"left thumb",
	"left index finger",
	"left middle finger",
	"left ring finger",
	"left little finger",
}

// Fingers returns all fingers in code order.
func Fingers() []Finger {
	out := make([]Finger, FingerCount)
	for i := range out {
		out[i] = Finger(i)
	}
	return out
}

// FingerNames returns the wire names of all fingers in code order.
func FingerNames() []string {
	return append([]string(nil), fingerNames[:]...)
}

// Valid reports whether f is one of the known codes.
func (f Finger) Valid() bool {
	return f < FingerCount
}

// String returns the wire name, e.g. RIGHT_INDEX.
func (f Finger) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Finger(%d)", uint8(f))
	}
	return fingerNames[f]
}

// DisplayName returns the human-readable name used in user-facing messages.
func (f Finger) DisplayName() string {
	if !f.Valid() {
		return "unknown finger"
	}
	return fingerDisplayNames[f]
}

// ParseFinger converts a wire name into a Finger. Matching ignores case and
// surrounding whitespace.
func ParseFinger(name string) (Finger, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, candidate := range fingerNames {
		if candidate == n {
			return Finger(i), nil
		}
	}
	return 0, fmt.Errorf("unknown finger %q, valid fingers: %s", name, strings.Join(fingerNames[:], ", "))
}

// FingerFromCode converts a stored code into a Finger.
func FingerFromCode(code int16) (Finger, error) {
	if code < 0 || code >= FingerCount {
		return 0, fmt.Errorf("finger code %d out of range", code)
	}
	return Finger(code), nil
}

// MarshalText encodes the finger by its wire name.
func (f Finger) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("finger code %d out of range", uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText decodes a wire name.
func (f *Finger) UnmarshalText(text []byte) error {
	parsed, err := ParseFinger(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
