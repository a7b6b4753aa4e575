package list

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes l as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) { return json.Marshal(l.Slice()) }

// UnmarshalJSON replaces the elements of l with the decoded array. On
// error l is left unchanged.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	var values []T
	if err := json.Unmarshal(b, &values); err != nil {
		return fmt.Errorf("unmarshal list failed: %w", err)
	}

	tmp := Of(values...)
	l.Swap(tmp)
	return nil
}
