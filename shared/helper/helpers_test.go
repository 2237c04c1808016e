package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/enum_ive_go/shared/helper"
	"github.com/stretchr/testify/assert"
)

func TestMust(t *testing.T) {
	assert.Equal(t, 3, helper.Must(3, nil))

	boom := errors.New("boom")
	assert.PanicsWithError(t, "boom", func() {
		helper.Must(0, boom)
	})
}

func TestGetTypedValueOf2(t *testing.T) {
	s, ok := helper.GetTypedValueOf2[string]("foo")
	assert.True(t, ok)
	assert.Equal(t, "foo", s)

	_, ok = helper.GetTypedValueOf2[string](42)
	assert.False(t, ok)

	_, ok = helper.GetTypedValueOf2[string](nil)
	assert.False(t, ok)
}
