package groupseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegment(t *testing.T) {
	t.Run("AppendAndBounds", func(t *testing.T) {
		seg := newSegment[string, *testItem]("a", 0)
		seg.start = 3

		seg.append(newItem("a", "a1"))
		seg.append(newItem("a", "a2"))

		assert.Equal(t, 2, seg.count())
		assert.Equal(t, 5, seg.end())
		assert.Equal(t, "a1", seg.get(0).name)
		assert.Equal(t, "a2", seg.get(1).name)
	})

	t.Run("InsertAt", func(t *testing.T) {
		seg := newSegment[string, *testItem]("a", 0)
		seg.append(newItem("a", "a1"))
		seg.append(newItem("a", "a3"))

		seg.insertAt(1, newItem("a", "a2"))

		assert.Equal(t, 3, seg.count())
		assert.Equal(t, "a2", seg.get(1).name)
		assert.Equal(t, "a3", seg.get(2).name)
	})

	t.Run("RemoveAt", func(t *testing.T) {
		seg := newSegment[string, *testItem]("a", 0)
		seg.append(newItem("a", "a1"))
		seg.append(newItem("a", "a2"))
		seg.append(newItem("a", "a3"))

		removed := seg.removeAt(1)

		assert.Equal(t, "a2", removed.name)
		assert.Equal(t, 2, seg.count())
		assert.Equal(t, "a3", seg.get(1).name)
	})

	t.Run("IndexOf", func(t *testing.T) {
		seg := newSegment[string, *testItem]("a", 0)
		a1 := newItem("a", "a1")
		a2 := newItem("a", "a2")
		seg.append(a1)
		seg.append(a2)

		assert.Equal(t, 0, seg.indexOf(a1))
		assert.Equal(t, 1, seg.indexOf(a2))
		assert.Equal(t, -1, seg.indexOf(newItem("a", "a1")))
	})

	t.Run("ResetKeepsStart", func(t *testing.T) {
		seg := newSegment[string, *testItem]("a", 0)
		seg.start = 7
		seg.append(newItem("a", "a1"))
		seg.append(newItem("a", "a2"))

		seg.reset()

		assert.Equal(t, 0, seg.count())
		assert.Equal(t, 7, seg.start)
		assert.Equal(t, 7, seg.end())
	})

	t.Run("Capacity", func(t *testing.T) {
		seg := newSegment[string, *testItem]("a", 16)
		assert.Equal(t, 16, cap(seg.items))
		assert.Equal(t, 0, seg.count())
	})
}
