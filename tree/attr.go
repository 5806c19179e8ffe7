package tree

// Reserved attribute keys. Callers building trees must use exactly these
// keys for the engine's attribute-based checks to fire.
const (
	AttrKeyAlt        = "Alt"
	AttrKeyActualText = "ActualText"
	AttrKeyLang       = "Lang"
	AttrKeyTitle      = "Title"
	AttrKeyLevel      = "Level"
)

// AttrKind discriminates the closed set of attribute value shapes.
type AttrKind int

const (
	AttrNull AttrKind = iota
	AttrString
	AttrBool
	AttrInt
	AttrFloat
	AttrArray
)

// AttrValue is a generic attribute value as carried by the source format.
// It is a small closed variant: string, bool, int, float, array, or null.
type AttrValue struct {
	kind  AttrKind
	str   string
	b     bool
	i     int64
	f     float64
	items []AttrValue
}

// NullValue returns the null attribute value.
func NullValue() AttrValue {
	return AttrValue{kind: AttrNull}
}

// StringValue wraps a string as an attribute value.
func StringValue(s string) AttrValue {
	return AttrValue{kind: AttrString, str: s}
}

// BoolValue wraps a bool as an attribute value.
func BoolValue(b bool) AttrValue {
	return AttrValue{kind: AttrBool, b: b}
}

// IntValue wraps an integer as an attribute value.
func IntValue(i int64) AttrValue {
	return AttrValue{kind: AttrInt, i: i}
}

// FloatValue wraps a float as an attribute value.
func FloatValue(f float64) AttrValue {
	return AttrValue{kind: AttrFloat, f: f}
}

// ArrayValue wraps a list of attribute values.
func ArrayValue(items ...AttrValue) AttrValue {
	copied := make([]AttrValue, len(items))
	copy(copied, items)
	return AttrValue{kind: AttrArray, items: copied}
}

// Kind returns the shape of the value.
func (v AttrValue) Kind() AttrKind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v AttrValue) IsNull() bool {
	return v.kind == AttrNull
}

// AsString returns the string payload. The second return value is false when
// the value is not a string.
func (v AttrValue) AsString() (string, bool) {
	return v.str, v.kind == AttrString
}

// AsBool returns the bool payload. The second return value is false when the
// value is not a bool.
func (v AttrValue) AsBool() (bool, bool) {
	return v.b, v.kind == AttrBool
}

// AsInt returns the integer payload. Float values that are whole numbers
// convert; anything else reports false.
func (v AttrValue) AsInt() (int64, bool) {
	switch v.kind {
	case AttrInt:
		return v.i, true
	case AttrFloat:
		if v.f == float64(int64(v.f)) {
			return int64(v.f), true
		}
	}
	return 0, false
}

// AsFloat returns the numeric payload as a float. Integer values convert.
func (v AttrValue) AsFloat() (float64, bool) {
	switch v.kind {
	case AttrFloat:
		return v.f, true
	case AttrInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsArray returns the array payload. The second return value is false when
// the value is not an array.
func (v AttrValue) AsArray() ([]AttrValue, bool) {
	if v.kind != AttrArray {
		return nil, false
	}
	return v.items, true
}
