package list

import (
	"encoding/json"
	"testing"

	"github.com/Asutorufa/flist/pkg/utils/assert"
)

func TestJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(Of(1, 2, 3))
		assert.NoError(t, err)
		assert.Equal(t, `[1,2,3]`, string(data))

		data, err = json.Marshal(New[string]())
		assert.NoError(t, err)
		assert.Equal(t, `[]`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		l := Of(9)
		assert.NoError(t, json.Unmarshal([]byte(`[4,5,6]`), l))
		assert.Equal(t, []int{4, 5, 6}, l.Slice())
		assert.Equal(t, 3, l.Len())
	})

	t.Run("bad input leaves list unchanged", func(t *testing.T) {
		l := Of(1, 2)
		assert.Error(t, json.Unmarshal([]byte(`[3,"x"]`), l))
		assert.Equal(t, []int{1, 2}, l.Slice())
	})

	t.Run("embedded", func(t *testing.T) {
		type doc struct {
			Items *List[string] `json:"items"`
		}

		var d doc
		assert.NoError(t, json.Unmarshal([]byte(`{"items":["a","b"]}`), &d))
		assert.Equal(t, []string{"a", "b"}, d.Items.Slice())
	})
}
