package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Score is the matcher's dissimilarity between two templates. Zero means
// identical, larger means less similar.
type Score uint32

// Threshold is the largest Score at which two templates are considered the
// same finger.
type Threshold Score

// Named thresholds. The comment on each is its approximate false-accept rate.
const (
	// ThresholdConservative accepts about 1 in 1,000,000 impostors.
	ThresholdConservative Threshold = 2147
	// ThresholdBalanced accepts about 1 in 100,000 impostors.
	ThresholdBalanced Threshold = 21474
	// ThresholdPermissive accepts about 1 in 10,000 impostors.
	ThresholdPermissive Threshold = 214748
)

var thresholdPresets = map[string]Threshold{
	"conservative": ThresholdConservative,
	"balanced":     ThresholdBalanced,
	"permissive":   ThresholdPermissive,
}

// Qualifies reports whether score is within the threshold.
func (t Threshold) Qualifies(score Score) bool {
	return score <= Score(t)
}

func (t Threshold) String() string {
	for name, preset := range thresholdPresets {
		if preset == t {
			return name
		}
	}
	return strconv.FormatUint(uint64(t), 10)
}

// UnmarshalText accepts a preset name or a non-negative integer score.
func (t *Threshold) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if preset, ok := thresholdPresets[s]; ok {
		*t = preset
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("threshold must be one of conservative, balanced, permissive or a non-negative integer, got %q", string(text))
	}
	*t = Threshold(v)

	return nil
}

// MarshalText encodes preset thresholds by name and others as integers.
func (t Threshold) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
