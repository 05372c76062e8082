package pixqr

import "reflect"

// DecodeOptions controls optional decoder behaviour.
type DecodeOptions struct {
	// SkipChecksum disables CRC-16 validation before parsing. Useful for
	// partial payloads in tests, or when the CRC trailer has already been
	// verified by the caller.
	SkipChecksum bool
}

// Decode parses payload and populates out, a pointer to a struct whose
// fields carry `pix:"tag"` annotations. The CRC trailer is validated by
// default; use DecodeWithOptions to skip it.
//
// String fields of out are bound directly to substrings of payload — no
// allocation occurs for leaf values, and out must not outlive payload only
// in the sense that mutating payload's backing array (which Go strings
// never permit) would be required to invalidate it; ordinary garbage
// collection keeps payload's backing array alive for as long as any
// substring of it, including fields of out, is reachable.
func Decode(payload string, out any) error {
	return DecodeWithOptions(payload, out, DecodeOptions{})
}

// DecodeWithOptions parses payload using the given options.
func DecodeWithOptions(payload string, out any, opts DecodeOptions) error {
	if !opts.SkipChecksum {
		if !ValidateCRC(payload) {
			return ErrInvalidChecksum
		}
	}

	v, err := structValue(out, true)
	if err != nil {
		return err
	}
	return decodeInto(payload, v)
}

// decodeInto walks payload fresh and binds v's schema fields from the
// resulting lookup. Called recursively (with a nested field's raw
// substring) for nested-record fields — see SPEC_FULL.md, Open Question 1.
func decodeInto(payload string, v reflect.Value) error {
	schema, err := schemaFor(v.Type())
	if err != nil {
		return err
	}

	// Walk this level only (empty container set): nested tags must not
	// overwrite this record's own tags in the lookup.
	lookup, err := walk(payload, newTagSet())
	if err != nil {
		return err
	}

	for _, f := range schema.fields {
		raw, present := lookup[f.tag]
		fv := v.Field(f.index)

		switch f.kind {
		case kindStringLeaf:
			if !present {
				return &MissingFieldError{Tag: f.tag, Name: f.name}
			}
			fv.SetString(raw)

		case kindOptionalStringLeaf:
			if !present {
				fv.Set(reflect.Zero(fv.Type()))
				continue
			}
			s := raw
			fv.Set(reflect.ValueOf(&s))

		case kindNestedRecord:
			if !present {
				return &MissingFieldError{Tag: f.tag, Name: f.name}
			}
			child := reflect.New(f.elemType).Elem()
			if err := decodeInto(raw, child); err != nil {
				return err
			}
			fv.Set(child)

		case kindOptionalNestedRecord:
			if !present {
				continue
			}
			child := reflect.New(f.elemType)
			if err := decodeInto(raw, child.Elem()); err != nil {
				return err
			}
			fv.Set(child)
		}
	}

	return nil
}
