// SPDX-License-Identifier: MIT

package floating

// Classification names the IEEE-754 class of a value. Exactly one class
// applies to every bit pattern.
type Classification int

const (
	NegativeInfinity Classification = iota
	NegativeNormal
	NegativeSubnormal
	NegativeZero
	PositiveInfinity
	PositiveNormal
	PositiveSubnormal
	PositiveZero
	QuietNaN
	SignalingNaN
)

var classificationNames = [...]string{
	NegativeInfinity:  "NegativeInfinity",
	NegativeNormal:    "NegativeNormal",
	NegativeSubnormal: "NegativeSubnormal",
	NegativeZero:      "NegativeZero",
	PositiveInfinity:  "PositiveInfinity",
	PositiveNormal:    "PositiveNormal",
	PositiveSubnormal: "PositiveSubnormal",
	PositiveZero:      "PositiveZero",
	QuietNaN:          "QuietNaN",
	SignalingNaN:      "SignalingNaN",
}

func (c Classification) String() string {
	if c < 0 || int(c) >= len(classificationNames) {
		return "Classification(?)"
	}

	return classificationNames[c]
}

// RoundingRule selects how a fractional value resolves to an integral value of
// the same type.
type RoundingRule int

const (
	// AwayFromZero rounds to the closest integral value whose magnitude is
	// greater than or equal to the source.
	AwayFromZero RoundingRule = iota
	// Down rounds toward negative infinity.
	Down
	// ToNearestOrAwayFromZero rounds to nearest; ties (within 0.1 of ±0.5) go
	// away from zero.
	ToNearestOrAwayFromZero
	// ToNearestOrEven currently behaves as Rounded (ties away from zero).
	ToNearestOrEven
	// TowardZero truncates.
	TowardZero
	// Up rounds toward positive infinity.
	Up
)

var ruleNames = [...]string{
	AwayFromZero:            "AwayFromZero",
	Down:                    "Down",
	ToNearestOrAwayFromZero: "ToNearestOrAwayFromZero",
	ToNearestOrEven:         "ToNearestOrEven",
	TowardZero:              "TowardZero",
	Up:                      "Up",
}

func (r RoundingRule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "RoundingRule(?)"
	}

	return ruleNames[r]
}

// Sign is the interpretation of the sign bit, independent of magnitude.
type Sign int

const (
	Plus Sign = iota
	Minus
)

func (s Sign) String() string {
	if s == Minus {
		return "Minus"
	}

	return "Plus"
}
