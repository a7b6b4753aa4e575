package script

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Asutorufa/flist/pkg/utils/list"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Save writes l to path as a google.protobuf.ListValue of decimal strings
// in protojson form. Strings keep integers beyond 2^53 exact. The file is
// replaced atomically.
func Save(path string, l *list.List[int]) error {
	values := make([]*structpb.Value, 0, l.Len())
	for v := range l.All() {
		values = append(values, structpb.NewStringValue(strconv.Itoa(v)))
	}

	data, err := protojson.MarshalOptions{Multiline: true, Indent: "\t"}.Marshal(&structpb.ListValue{Values: values})
	if err != nil {
		return fmt.Errorf("marshal snapshot failed: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create snapshot failed: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot failed: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot failed: %w", err)
	}

	return os.Rename(tmp.Name(), path)
}

// Load reads a snapshot written by Save.
func Load(path string) (*list.List[int], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot failed: %w", err)
	}

	var lv structpb.ListValue
	if err = protojson.Unmarshal(data, &lv); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot failed: %w", err)
	}

	values := make([]int, 0, len(lv.GetValues()))
	for i, v := range lv.GetValues() {
		var n int
		switch kind := v.GetKind().(type) {
		case *structpb.Value_StringValue:
			n, err = strconv.Atoi(kind.StringValue)
			if err != nil {
				return nil, fmt.Errorf("%w: element %d: %w", ErrSnapshot, i, err)
			}
		case *structpb.Value_NumberValue:
			// numbers only round trip exactly up to 2^53
			f := kind.NumberValue
			if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
				return nil, fmt.Errorf("%w: element %d (%v) is not an exact integer", ErrSnapshot, i, f)
			}
			n = int(f)
		default:
			return nil, fmt.Errorf("%w: element %d is not an integer", ErrSnapshot, i)
		}
		values = append(values, n)
	}

	return list.Of(values...), nil
}
