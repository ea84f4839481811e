package model

import "github.com/dm/ccm-go/internal/client"

// Record is re-exported from the client package: it is the shape the panel
// returns and the shape the fetchers merge.
type Record = client.Record

// Merge shallow-merges the given sources into a fresh Record. Later sources
// override earlier ones on key collision. The inputs are never mutated.
func Merge(sources ...Record) Record {
	out := make(Record)
	for _, src := range sources {
		for k, v := range src {
			out[k] = v
		}
	}
	return out
}

// Without returns a copy of r with the given keys suppressed. Used to keep
// a nested payload's own id field from overwriting the record identity.
func Without(r Record, keys ...string) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// FindByID returns the first record whose identity key matches id, or nil.
func FindByID(records []Record, key string, id any) Record {
	for _, r := range records {
		if v, ok := r.ID(key); ok && client.SameID(v, id) {
			return r
		}
	}
	return nil
}
