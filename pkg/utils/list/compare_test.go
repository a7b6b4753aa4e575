package list

import (
	"math"
	"strings"
	"testing"

	"github.com/Asutorufa/flist/pkg/utils/assert"
)

func TestEqual(t *testing.T) {
	for _, c := range []struct {
		name string
		a, b []int
		want bool
	}{
		{"empty", nil, nil, true},
		{"same", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"one element differs", []int{1, 2, 3}, []int{1, 5, 3}, false},
		{"length differs", []int{1, 2}, []int{1, 2, 3}, false},
		{"empty and non empty", nil, []int{0}, false},
	} {
		t.Run(c.name, func(t *testing.T) {
			a, b := Of(c.a...), Of(c.b...)
			assert.Equal(t, c.want, Equal(a, b))
			assert.Equal(t, c.want, Equal(b, a))
			assert.Equal(t, !c.want, NotEqual(a, b))
		})
	}

	t.Run("copy is equal", func(t *testing.T) {
		l := Of("x", "y")
		assert.True(t, Equal(l, l.Clone()))
		assert.True(t, Equal(l, l))
	})

	t.Run("size mismatch skips elements", func(t *testing.T) {
		calls := 0
		EqualFunc(Of(1), Of(1, 2), func(int, int) bool {
			calls++
			return true
		})
		assert.Equal(t, 0, calls)
	})

	t.Run("fold case", func(t *testing.T) {
		ok := EqualFunc(Of("A", "b"), Of("a", "B"), strings.EqualFold)
		assert.True(t, ok)
	})
}

func TestOrdering(t *testing.T) {
	for _, c := range []struct {
		name string
		a, b []int
		want int
	}{
		{"prefix is less", []int{1, 2}, []int{1, 2, 3}, -1},
		{"first difference decides", []int{1, 3}, []int{1, 2, 9}, 1},
		{"empty is less", nil, []int{1}, -1},
		{"both empty", nil, nil, 0},
		{"equal", []int{4, 5}, []int{4, 5}, 0},
	} {
		t.Run(c.name, func(t *testing.T) {
			a, b := Of(c.a...), Of(c.b...)
			assert.Equal(t, c.want, Compare(a, b))
			assert.Equal(t, -c.want, Compare(b, a))

			assert.Equal(t, c.want < 0, Less(a, b))
			assert.Equal(t, c.want <= 0, LessOrEqual(a, b))
			assert.Equal(t, c.want > 0, Greater(a, b))
			assert.Equal(t, c.want >= 0, GreaterOrEqual(a, b))
			assert.Equal(t, c.want == 0, Equal(a, b))
		})
	}

	t.Run("strings", func(t *testing.T) {
		assert.True(t, Less(Of("a", "b"), Of("a", "c")))
		assert.True(t, Greater(Of("b"), Of("a", "z")))
	})

	t.Run("func", func(t *testing.T) {
		byLen := func(a, b string) int { return len(a) - len(b) }
		assert.True(t, CompareFunc(Of("aa"), Of("b", "c"), byLen) > 0)
	})

	t.Run("nan", func(t *testing.T) {
		nan := math.NaN()
		assert.False(t, Less(Of(nan), Of(1.0)))
		assert.False(t, Less(Of(1.0), Of(nan)))
		assert.False(t, Equal(Of(nan), Of(nan)))
		assert.True(t, LessOrEqual(Of(nan), Of(nan)))
		assert.True(t, Less(Of(nan), Of(nan, 1.0)))
		assert.True(t, Less(Of(nan, 1.0), Of(2.0, 2.0)))
		assert.Equal(t, -1, Compare(Of(nan), Of(1.0)))
	})
}
