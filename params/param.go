package params

// Kind identifies the declared slot type of a Param.
type Kind uint8

const (
	KindBool Kind = iota
	KindString
	KindInt
	KindUint
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
)

// String returns the Go type name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// Value constrains the types a parameter slot can hold. The set mirrors
// the converter: one numeric family per strconv routine, plus bool and
// string.
type Value interface {
	bool | string | int | uint | int64 | uint64 | float32 | float64
}

// slot is a tagged destination for a parsed value. Exactly one of the
// typed pointers is non-nil, selected by kind. The tag is what typed
// accessors compare against; no reflection is involved anywhere.
type slot struct {
	kind Kind
	b    *bool
	s    *string
	i    *int
	u    *uint
	i64  *int64
	u64  *uint64
	f32  *float32
	f64  *float64
}

// newSlot builds a slot writing through to a caller-owned target.
func newSlot[T Value](target *T) slot {
	var sl slot
	switch p := any(target).(type) {
	case *bool:
		sl.kind, sl.b = KindBool, p
	case *string:
		sl.kind, sl.s = KindString, p
	case *int:
		sl.kind, sl.i = KindInt, p
	case *uint:
		sl.kind, sl.u = KindUint, p
	case *int64:
		sl.kind, sl.i64 = KindInt64, p
	case *uint64:
		sl.kind, sl.u64 = KindUint64, p
	case *float32:
		sl.kind, sl.f32 = KindFloat32, p
	case *float64:
		sl.kind, sl.f64 = KindFloat64, p
	}
	return sl
}

// Param is the schema unit for one logical parameter: its alias names,
// whether it is an option or a positional, the required flag, and the
// typed slot parsed values are written into. Params are created through
// Bind/Add and owned by the Set; the found flag is mutated during Parse.
type Param struct {
	names    []string
	option   bool
	required bool
	found    bool
	slot     slot
}

// Name returns the primary (first registered) name of the parameter.
func (p *Param) Name() string {
	return p.names[0]
}

// Names returns all registered aliases.
func (p *Param) Names() []string {
	return p.names
}

// Kind returns the declared slot type.
func (p *Param) Kind() Kind {
	return p.slot.kind
}

// Required reports whether the parameter must appear in the token stream.
func (p *Param) Required() bool {
	return p.required
}

// Found reports whether any alias of the parameter matched during Parse.
func (p *Param) Found() bool {
	return p.found
}

// RequiresValue returns true if the parameter consumes a value token.
// Boolean parameters are presence-only.
func (p *Param) RequiresValue() bool {
	return p.slot.kind != KindBool
}

// isOption reports whether a name carries the option marker.
func isOption(name string) bool {
	return len(name) > 0 && name[0] == '-'
}
