package params

// Set owns the registered parameters for one parse pass: the descriptor
// storage, the alias lookup table and the ordered positional subsequence.
// Build the schema first (Bind/Add), then call Parse exactly once; found
// flags are not reset between passes, so re-parsing the same Set is not a
// supported pattern.
type Set struct {
	strict      bool
	defs        []*Param
	byName      map[string]int
	positionals []int
}

// Readability aliases for the required argument of Bind and Add.
const (
	Required = true
	Optional = false
)

// New creates an empty parameter set. Strict mode is the default: unknown
// options and surplus positional tokens abort the parse.
func New() *Set {
	return &Set{
		strict: true,
		byName: make(map[string]int),
	}
}

// Lenient switches the set to lenient mode, in which unknown options and
// surplus positional tokens are silently skipped. Conversion and
// missing-required failures still abort. Must be called before Parse.
func (s *Set) Lenient() *Set {
	s.strict = false
	return s
}

// Bind registers a parameter whose parsed value is written through to a
// caller-owned target. Names starting with the option marker register an
// option reachable by any of its aliases; a single bare name registers a
// positional parameter matched by declaration order.
func Bind[T Value](s *Set, target *T, required bool, names ...string) error {
	return s.register(&Param{
		names:    names,
		required: required,
		slot:     newSlot(target),
	})
}

// Add registers a parameter with a set-owned slot, retrieved after Parse
// via Get with any of its names.
func Add[T Value](s *Set, required bool, names ...string) error {
	return Bind(s, new(T), required, names...)
}

// Get returns the value of the parameter registered under name. It fails
// with a not_found error for unregistered names and a type_mismatch error
// when T differs from the declared slot type.
func Get[T Value](s *Set, name string) (T, error) {
	var zero T
	idx, ok := s.byName[name]
	if !ok {
		return zero, &ParseError{
			Type:    ErrorTypeNotFound,
			Message: "parameter not found: " + name,
			Param:   name,
		}
	}
	d := s.defs[idx]

	want := newSlot(&zero).kind
	if d.slot.kind != want {
		return zero, &ParseError{
			Type:    ErrorTypeTypeMismatch,
			Message: "parameter " + name + " is " + d.slot.kind.String() + ", not " + want.String(),
			Param:   name,
		}
	}

	switch p := any(&zero).(type) {
	case *bool:
		*p = *d.slot.b
	case *string:
		*p = *d.slot.s
	case *int:
		*p = *d.slot.i
	case *uint:
		*p = *d.slot.u
	case *int64:
		*p = *d.slot.i64
	case *uint64:
		*p = *d.slot.u64
	case *float32:
		*p = *d.slot.f32
	case *float64:
		*p = *d.slot.f64
	}
	return zero, nil
}

// MustGet is Get for schemas known to be correct; it panics on failure.
func MustGet[T Value](s *Set, name string) T {
	v, err := Get[T](s, name)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup returns the descriptor registered under name.
func (s *Set) Lookup(name string) (*Param, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return s.defs[idx], true
}

// register validates a descriptor and inserts it into the set. All names
// must share one class: either every name carries the option marker, or
// the descriptor is positional and carries exactly one placeholder name.
// Duplicate aliases are rejected rather than overwritten.
func (s *Set) register(p *Param) error {
	if len(p.names) == 0 {
		return NewParseError(ErrorTypeConfiguration, "parameter needs at least one name")
	}

	p.option = isOption(p.names[0])
	for _, name := range p.names[1:] {
		if isOption(name) != p.option {
			return &ParseError{
				Type:    ErrorTypeConfiguration,
				Message: "parameter mixes option and positional names: " + p.names[0] + ", " + name,
				Param:   p.names[0],
			}
		}
	}
	if !p.option && len(p.names) > 1 {
		return &ParseError{
			Type:    ErrorTypeConfiguration,
			Message: "positional parameter takes a single placeholder name: " + p.names[0],
			Param:   p.names[0],
		}
	}

	for _, name := range p.names {
		if _, exists := s.byName[name]; exists {
			return &ParseError{
				Type:    ErrorTypeConfiguration,
				Message: "parameter already registered: " + name,
				Param:   name,
			}
		}
	}

	idx := len(s.defs)
	s.defs = append(s.defs, p)
	for _, name := range p.names {
		s.byName[name] = idx
	}
	if !p.option {
		s.positionals = append(s.positionals, idx)
	}
	return nil
}

// auditRequired reports the first required parameter left unfound after a
// full scan, options before positionals, each in registration order.
func (s *Set) auditRequired() error {
	for _, d := range s.defs {
		if d.option && d.required && !d.found {
			return missingRequiredError(d)
		}
	}
	for _, idx := range s.positionals {
		d := s.defs[idx]
		if d.required && !d.found {
			return missingRequiredError(d)
		}
	}
	return nil
}

func missingRequiredError(d *Param) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingRequired,
		Message: "required parameter not found: " + d.Name(),
		Param:   d.Name(),
	}
}

// optionNames collects every registered option alias, used for unknown
// option suggestions.
func (s *Set) optionNames() []string {
	names := make([]string, 0, len(s.byName))
	for name, idx := range s.byName {
		if s.defs[idx].option {
			names = append(names, name)
		}
	}
	return names
}
