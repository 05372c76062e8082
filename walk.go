package pixqr

import "sync"

// tagSet is a small thread-safe set of two-character tag identifiers, used
// to track which tags hold nested TLV content ("container tags").
type tagSet struct {
	mu  sync.RWMutex
	set map[string]struct{}
}

func newTagSet(tags ...string) *tagSet {
	ts := &tagSet{set: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		ts.set[t] = struct{}{}
	}
	return ts
}

// Has reports whether tag is a registered container tag.
func (ts *tagSet) Has(tag string) bool {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	_, ok := ts.set[tag]
	return ok
}

// register idempotently adds tag to the set. Schema registration
// (schema.go) calls this for every nested-record field it discovers, so the
// container tag set grows with the schemas actually in use rather than
// requiring a hand-maintained global list (see SPEC_FULL.md, Open Question 3).
func (ts *tagSet) register(tag string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.set[tag] = struct{}{}
}

// ContainerTags is the process-wide, open registry of tag identifiers known
// to hold nested TLV content. It is seeded with the fixed minimum the Pix
// profile requires ("26" Merchant Account Information, "62" Additional
// Data) and grows as record schemas declaring nested-record fields are
// first used.
var ContainerTags = newTagSet("26", "62")

// walk tokenises payload into a tag→value lookup table, recursing into any
// tag present in containers and merging the nested tag→value pairs directly
// into the same lookup (later occurrence of a tag, at any depth, wins). All
// returned values are substrings of payload — no copying occurs.
//
// This reproduces spec.md §4.4's literal walker semantics, including its
// flat-merge behaviour: a root-level tag and a nested tag that happen to
// share an identifier will collide, with the more deeply nested — or later
// — occurrence overwriting. Schema-driven decoding of nested-record fields
// (decode.go) does not rely on this flattening; it re-walks the container's
// own substring independently. See SPEC_FULL.md, Open Question 1.
func walk(payload string, containers *tagSet) (map[string]string, error) {
	lookup := make(map[string]string)
	cursor := payload

	for {
		tag, lenDigits, rest, ok := splitOne(cursor)
		if !ok {
			// 0 characters: clean end of input. 1-3 characters: an
			// unterminated partial triple, tolerated per spec.md §4.4.
			return lookup, nil
		}

		if !isTwoDigits(lenDigits) {
			return nil, &MalformedLengthError{Tag: tag, Reason: "length is not two decimal digits"}
		}
		length := int(lenDigits[0]-'0')*10 + int(lenDigits[1]-'0')

		if length > len(rest) {
			return nil, &MalformedLengthError{Tag: tag, Reason: "declared length exceeds remaining input"}
		}

		value := rest[:length]
		remainder := rest[length:]

		lookup[tag] = value

		if containers.Has(tag) {
			nested, err := walk(value, containers)
			if err != nil {
				return nil, err
			}
			for k, v := range nested {
				lookup[k] = v
			}
		}

		cursor = remainder
	}
}
