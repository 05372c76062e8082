package pixqr

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// fieldKind classifies a schema entry the way spec.md §3 does.
type fieldKind int

const (
	kindStringLeaf fieldKind = iota
	kindOptionalStringLeaf
	kindNestedRecord
	kindOptionalNestedRecord
)

// fieldSpec is one schema entry: the tag it occupies on the wire, the
// struct field it binds to, and what kind of value it holds.
type fieldSpec struct {
	tag      string
	name     string
	kind     fieldKind
	def      string       // literal substituted on encode when absent
	index    int          // struct field index, for reflect.Value.Field
	elemType reflect.Type // nested record's (non-pointer) struct type
}

// recordSchema is the ordered list of field specs for one record type, in
// declaration order — the single source of truth the encoder and decoder
// both drive off of (spec.md §4.5). The codec itself never inspects a
// record's type beyond this.
type recordSchema struct {
	fields []fieldSpec
}

var schemaCache sync.Map // reflect.Type -> *recordSchema

// schemaFor computes (and caches) the schema for struct type t by reading
// each field's `pix:"tag[,default=literal]"` tag. Fields without a `pix` tag
// are ignored — they play no part in the wire format.
func schemaFor(t reflect.Type) (*recordSchema, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotAStruct, t.Kind())
	}

	if cached, ok := schemaCache.Load(t); ok {
		return cached.(*recordSchema), nil
	}

	seen := make(map[string]bool)
	var fields []fieldSpec

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		rawTag, ok := sf.Tag.Lookup("pix")
		if !ok || rawTag == "" {
			continue
		}

		parts := strings.Split(rawTag, ",")
		tag := parts[0]
		if !isTwoDigits(tag) {
			return nil, fmt.Errorf("pixqr: field %s.%s has invalid pix tag %q: want two decimal digits",
				t.Name(), sf.Name, tag)
		}
		if seen[tag] {
			return nil, fmt.Errorf("pixqr: %s: tag %s used by more than one field", t.Name(), tag)
		}
		seen[tag] = true

		var def string
		for _, opt := range parts[1:] {
			if v, found := strings.CutPrefix(opt, "default="); found {
				def = v
			}
		}

		spec := fieldSpec{tag: tag, name: sf.Name, index: i, def: def}

		switch ft := sf.Type; {
		case ft.Kind() == reflect.String:
			spec.kind = kindStringLeaf

		case ft.Kind() == reflect.Pointer && ft.Elem().Kind() == reflect.String:
			spec.kind = kindOptionalStringLeaf

		case ft.Kind() == reflect.Struct:
			spec.kind = kindNestedRecord
			spec.elemType = ft
			ContainerTags.register(tag)

		case ft.Kind() == reflect.Pointer && ft.Elem().Kind() == reflect.Struct:
			spec.kind = kindOptionalNestedRecord
			spec.elemType = ft.Elem()
			ContainerTags.register(tag)

		default:
			return nil, fmt.Errorf("pixqr: field %s.%s has unsupported type %s for a pix-tagged field",
				t.Name(), sf.Name, ft)
		}

		fields = append(fields, spec)
	}

	rs := &recordSchema{fields: fields}
	schemaCache.Store(t, rs)
	return rs, nil
}

// structValue dereferences record down to the addressable struct value
// Serialize/Decode operate on.
func structValue(record any, forWrite bool) (reflect.Value, error) {
	v := reflect.ValueOf(record)
	if v.Kind() != reflect.Pointer {
		if forWrite {
			return reflect.Value{}, fmt.Errorf("pixqr: Decode requires a non-nil pointer, got %T", record)
		}
		// Serialize is also accepted with a plain struct value.
	} else {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("pixqr: %T is a nil pointer", record)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: got %s", ErrNotAStruct, v.Kind())
	}
	return v, nil
}
