package enums_test

import "github.com/on-the-ground/enum_ive_go/enums"

type pair uint8

const (
	pairFoo pair = iota
	pairBar
)

const pairCount = 2

var pairType = enums.MustDeclare[pair]("pair", "foo", "bar")

func (pair) EnumType() *enums.Type[pair] { return pairType }

func (p pair) String() string { return pairType.Label(p) }

type trio uint8

const (
	trioFoo trio = iota
	trioBar
	trioBaz
)

const trioCount = 3

var trioType = enums.MustDeclare[trio]("trio", "foo", "bar", "baz")

func (trio) EnumType() *enums.Type[trio] { return trioType }

type primary uint8

const (
	primaryRed primary = iota
	primaryGreen
	primaryBlue
)

const primaryCount = 3

var primaryType = enums.MustDeclare[primary]("primary", "Red", "Green", "Blue")

func (primary) EnumType() *enums.Type[primary] { return primaryType }

// orphan has the trait method but no declaration behind it.
type orphan uint8

func (orphan) EnumType() *enums.Type[orphan] { return nil }

type plain uint8

type label string

type point struct{ X, Y int }

// A mismatched count here fails to compile: the array length is negative
// when trio is smaller and the types differ when it is larger.
var _ [0]struct{} = [trioCount - primaryCount]struct{}{}

var _ [pairCount]string = [...]string{"Foo", "Bar"}
