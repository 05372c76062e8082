package pixqr

import "reflect"

// Serialize serialises record — a struct or pointer to struct whose fields
// carry `pix:"tag"` annotations — to its TLV wire string, in schema
// declaration order. No CRC trailer is appended.
//
// Optional fields (a `*string` or pointer-to-struct field that is nil) are
// elided entirely, not emitted with a zero length — except a nil `*string`
// whose pix tag names a default, which emits that default. Nested-record fields are
// serialised to their own string first, so the parent's length field
// reflects the exact serialised size.
func Serialize(record any) (string, error) {
	v, err := structValue(record, false)
	if err != nil {
		return "", err
	}
	buf, err := serializeValue(v)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// MustSerialize is like Serialize but panics instead of returning an error.
// Use it only for record values already known to satisfy their schema (e.g.
// constants built at package init), not for anything derived from external
// input.
func MustSerialize(record any) string {
	s, err := Serialize(record)
	if err != nil {
		panic(err)
	}
	return s
}

// MustSerializeWithChecksum is like SerializeWithChecksum but panics instead
// of returning an error. Use it only for record values already known to
// satisfy their schema, not for anything derived from external input.
func MustSerializeWithChecksum(record any) string {
	s, err := SerializeWithChecksum(record)
	if err != nil {
		panic(err)
	}
	return s
}

// SerializeWithChecksum serialises record and appends the literal "6304"
// followed by the four-character upper-case-hex CRC-16/IBM-3740 of
// everything preceding it, including the "6304" itself.
func SerializeWithChecksum(record any) (string, error) {
	v, err := structValue(record, false)
	if err != nil {
		return "", err
	}
	buf, err := serializeValue(v)
	if err != nil {
		return "", err
	}

	buf = append(buf, "6304"...)
	crc := ComputeCRC(buf)
	buf = append(buf, crcString(crc)...)
	return string(buf), nil
}

func serializeValue(v reflect.Value) ([]byte, error) {
	schema, err := schemaFor(v.Type())
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 64)

	for _, f := range schema.fields {
		fv := v.Field(f.index)

		switch f.kind {
		case kindStringLeaf:
			s := fv.String()
			if s == "" && f.def != "" {
				s = f.def
			}
			if err := writeTLV(&buf, f.tag, s); err != nil {
				return nil, err
			}

		case kindOptionalStringLeaf:
			if fv.IsNil() {
				if f.def == "" {
					continue
				}
				if err := writeTLV(&buf, f.tag, f.def); err != nil {
					return nil, err
				}
				continue
			}
			if err := writeTLV(&buf, f.tag, fv.Elem().String()); err != nil {
				return nil, err
			}

		case kindNestedRecord:
			child, err := serializeValue(fv)
			if err != nil {
				return nil, err
			}
			if err := writeTLV(&buf, f.tag, string(child)); err != nil {
				return nil, err
			}

		case kindOptionalNestedRecord:
			if fv.IsNil() {
				continue
			}
			child, err := serializeValue(fv.Elem())
			if err != nil {
				return nil, err
			}
			if err := writeTLV(&buf, f.tag, string(child)); err != nil {
				return nil, err
			}
		}
	}

	return buf, nil
}
