package enums_test

import (
	"testing"

	"github.com/on-the-ground/enum_ive_go/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembersIteratesInIndexOrder(t *testing.T) {
	members := enums.NewMembers[trio]()
	assert.Equal(t, trioCount, members.Len())

	var got []int
	for v := range members.All() {
		got = append(got, enums.IndexOf(v))
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestMembersAccess(t *testing.T) {
	members := enums.NewMembers[primary]()

	v, err := members.At(2)
	require.NoError(t, err)
	assert.Equal(t, primaryBlue, v)
	assert.Equal(t, primaryGreen, members.MustAt(1))

	v, err = members.Get(primaryGreen)
	require.NoError(t, err)
	assert.Equal(t, primaryGreen, v)

	_, err = members.At(3)
	assert.ErrorIs(t, err, enums.ErrOutOfRange)
	_, err = members.Get(primary(7))
	assert.ErrorIs(t, err, enums.ErrOutOfRange)
	assert.PanicsWithError(t, "enum conversion out of range, enum: primary, value: -1, size: 3", func() {
		members.MustAt(-1)
	})
}

func TestMembersIndexArray(t *testing.T) {
	strings := enums.MustNewArray[pair]("Foo", "Bar")

	var got []string
	for e := range enums.NewMembers[pair]().All() {
		got = append(got, strings.MustGet(e))
	}
	assert.Equal(t, []string{"Foo", "Bar"}, got)
}

func TestMembersZeroValue(t *testing.T) {
	var members enums.Members[pair]
	assert.Equal(t, pairCount, members.Len())
	assert.Equal(t, pairBar, members.MustAt(1))
}
