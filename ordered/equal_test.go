package ordered_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vrelsted/dstk/ordered"
)

// insertAll builds an int→string tree by inserting keys in the given order,
// values derived from keys. Insertion order determines shape.
func insertAll(keys ...int) *ordered.Tree[int, int] {
	tr := ordered.New[int, int]()
	for _, k := range keys {
		tr.Insert(k, k*10)
	}

	return tr
}

func TestEqual_IdenticalShapeAndContent(t *testing.T) {
	a := insertAll(5, 2, 8, 1, 3)
	b := insertAll(5, 2, 8, 1, 3)
	assert.True(t, ordered.Equal(a, b))
	assert.True(t, ordered.Equal(b, a))
}

func TestEqual_SameMappingDifferentShapeIsNotEqual(t *testing.T) {
	// Both hold {1,2,3} with identical values, but insertion order gives
	// different shapes: equality here is structural, not set-based.
	chain := insertAll(1, 2, 3)    // right spine rooted at 1
	balanced := insertAll(2, 1, 3) // rooted at 2
	assert.False(t, ordered.Equal(chain, balanced))
}

func TestEqual_ValueMismatch(t *testing.T) {
	a := insertAll(4, 2, 6)
	b := insertAll(4, 2, 6)
	b.Insert(2, 999) // overwrite only, shape unchanged
	assert.False(t, ordered.Equal(a, b))
}

func TestEqual_SizeMismatch(t *testing.T) {
	a := insertAll(1, 2)
	b := insertAll(1, 2, 3)
	assert.False(t, ordered.Equal(a, b))
}

func TestEqual_EmptyAndNil(t *testing.T) {
	a := ordered.New[int, int]()
	b := ordered.New[int, int]()
	assert.True(t, ordered.Equal(a, b))
	assert.True(t, ordered.Equal(a, a))

	var nilTree *ordered.Tree[int, int]
	assert.True(t, ordered.Equal(nilTree, nilTree))
	assert.False(t, ordered.Equal(a, nilTree))
	assert.False(t, ordered.Equal(nilTree, a))
}

func TestEqualFunc_CustomValueEquivalence(t *testing.T) {
	a := ordered.New[int, []int]()
	b := ordered.New[int, []int]()
	a.Insert(1, []int{1, 2})
	b.Insert(1, []int{1, 2})

	sameLen := func(x, y []int) bool { return len(x) == len(y) }
	assert.True(t, ordered.EqualFunc(a, b, sameLen))

	b.Insert(1, []int{1, 2, 3})
	assert.False(t, ordered.EqualFunc(a, b, sameLen))
}

func TestEqual_CloneIsEqual(t *testing.T) {
	orig := insertAll(7, 3, 11, 1, 5, 9, 13)
	assert.True(t, ordered.Equal(orig, orig.Clone()))
}
