// Package enums attaches metadata to small enumerated types: their size,
// variant labels, iteration, and fixed-size containers keyed by variant.
//
// # Declaring an enum
//
// A managed enum is a uint8 based type whose EnumType method returns the
// descriptor built by Declare. The declaration is normally generated by
// cmd/enumgen so that the type, its constants and its descriptor always
// appear together:
//
//	//go:generate go run github.com/on-the-ground/enum_ive_go/cmd/enumgen generate --type Color Red Green Blue
//
// which produces, among other things:
//
//	type Color uint8
//
//	const (
//	    Red Color = iota
//	    Green
//	    Blue
//	)
//
//	const ColorCount = 3
//
//	var colorType = enums.MustDeclare[Color]("Color", "Red", "Green", "Blue")
//
//	func (Color) EnumType() *enums.Type[Color] { return colorType }
//
// # Traits
//
// Size[Color]() is 3 and IsManaged[Color]() is true; IsManaged is false for
// any type not declared this way. IndexOf and ValueAt convert between
// variants and indices; ValueAt rejects indices outside [0, Size).
//
// # Containers
//
// Array[E, V] stores one V per variant:
//
//	names := enums.MustNewArray[Color]("rouge", "vert", "bleu")
//	c, err := enums.Find(names, "vert") // Green
//
// Members[E] lists every variant, and All[E] / ForEach[E] iterate over them.
//
// Nothing in this package performs I/O or synchronisation. Arrays are as safe
// for concurrent use as a plain slice.
package enums
