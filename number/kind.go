// SPDX-License-Identifier: MIT

package number

// Kind tags the primitive held by a Number. The declaration order is also the
// order Compare uses across kinds and the order Parse tries.
type Kind uint8

const (
	Bool Kind = iota
	Int
	Int8
	Int16
	Int32
	Uint
	Uint8
	Uint16
	Uint32
	Float
	Double
)

var kindNames = [...]string{
	Bool:   "Bool",
	Int:    "Int",
	Int8:   "Int8",
	Int16:  "Int16",
	Int32:  "Int32",
	Uint:   "Uint",
	Uint8:  "Uint8",
	Uint16: "Uint16",
	Uint32: "Uint32",
	Float:  "Float",
	Double: "Double",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "Kind(?)"
	}

	return kindNames[k]
}

// category groups kinds by the field that stores them.
type category uint8

const (
	unsignedCategory category = iota // Bool and Uint*
	signedCategory
	floatCategory
)

func (k Kind) category() category {
	switch k {
	case Int, Int8, Int16, Int32:
		return signedCategory
	case Float, Double:
		return floatCategory
	}

	return unsignedCategory
}
