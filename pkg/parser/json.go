package parser

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON encodes the value by variant: scalar string or number, mapping
// as an object with key order preserved, sequence as an array, absent as
// null. encoding/json maps would lose mapping order, so objects are built by
// hand.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		if v.integer {
			return []byte(strconv.FormatInt(int64(v.num), 10)), nil
		}
		return json.Marshal(v.num)
	case KindMapping:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, p := range v.pairs {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(p.Key)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(p.Value)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case KindSequence:
		return json.Marshal(v.items)
	default:
		return []byte("null"), nil
	}
}
