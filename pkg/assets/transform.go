package assets

import (
	"fmt"
	"strings"
)

// Transform is a single CDN transformation parameter. Value may be a bool,
// an integer, a string, or nil. A true value serializes as the bare key,
// false and nil are dropped, anything else serializes as key_value.
type Transform struct {
	Key   string
	Value any
}

// T is shorthand for constructing a Transform.
func T(key string, value any) Transform {
	return Transform{Key: key, Value: value}
}

// Common Cloudinary parameters.
func Format(f string) Transform  { return T("f", f) }
func Quality(q string) Transform { return T("q", q) }
func Width(px int) Transform     { return T("w", px) }
func Height(px int) Transform    { return T("h", px) }
func Crop(mode string) Transform { return T("c", mode) }
func Gravity(g string) Transform { return T("g", g) }
func Flag(fl string) Transform   { return T("fl", fl) }

// Transforms is an insertion-ordered list of transformation parameters.
// Keys are unique after Merge.
type Transforms []Transform

// DefaultTransforms returns the transformations applied to every CDN URL:
// automatic format, good automatic quality and automatic device pixel ratio.
func DefaultTransforms() Transforms {
	return Transforms{
		T("f_auto", true),
		T("q_auto", "good"),
		T("dpr_auto", true),
	}
}

// Merge returns a new list with overrides applied on top of ts. An override
// whose key already exists replaces the value in place; new keys are
// appended in the order given. The receiver is not modified.
func (ts Transforms) Merge(overrides ...Transform) Transforms {
	out := make(Transforms, len(ts), len(ts)+len(overrides))
	copy(out, ts)
	for _, o := range overrides {
		if i := out.index(o.Key); i >= 0 {
			out[i].Value = o.Value
			continue
		}
		out = append(out, o)
	}
	return out
}

// Get returns the value stored for key.
func (ts Transforms) Get(key string) (any, bool) {
	if i := ts.index(key); i >= 0 {
		return ts[i].Value, true
	}
	return nil, false
}

// Segment serializes ts into a comma separated URL path segment.
func (ts Transforms) Segment() string {
	tokens := make([]string, 0, len(ts))
	for _, t := range ts {
		if tok, ok := t.token(); ok {
			tokens = append(tokens, tok)
		}
	}
	return strings.Join(tokens, ",")
}

func (ts Transforms) index(key string) int {
	for i, t := range ts {
		if t.Key == key {
			return i
		}
	}
	return -1
}

func (t Transform) token() (string, bool) {
	switch v := t.Value.(type) {
	case nil:
		return "", false
	case bool:
		if !v {
			return "", false
		}
		return t.Key, true
	default:
		return t.Key + "_" + fmt.Sprint(v), true
	}
}
