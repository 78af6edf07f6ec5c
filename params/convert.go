package params

import "strconv"

// assign converts the resolved value text into the parameter's slot and
// marks the parameter found. Boolean parameters ignore the text entirely:
// presence alone sets the slot. Numeric conversion delegates to strconv
// and the strconv error is preserved as the cause of the ParseError.
func (p *Param) assign(text string) error {
	switch p.slot.kind {
	case KindBool:
		*p.slot.b = true

	case KindString:
		*p.slot.s = text

	case KindInt:
		v, err := strconv.Atoi(text)
		if err != nil {
			return p.conversionError(text, err)
		}
		*p.slot.i = v

	case KindUint:
		v, err := strconv.ParseUint(text, 10, strconv.IntSize)
		if err != nil {
			return p.conversionError(text, err)
		}
		*p.slot.u = uint(v)

	case KindInt64:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return p.conversionError(text, err)
		}
		*p.slot.i64 = v

	case KindUint64:
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return p.conversionError(text, err)
		}
		*p.slot.u64 = v

	case KindFloat32:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return p.conversionError(text, err)
		}
		*p.slot.f32 = float32(v)

	case KindFloat64:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return p.conversionError(text, err)
		}
		*p.slot.f64 = v

	default:
		return &ParseError{
			Type:    ErrorTypeConfiguration,
			Message: "unsupported parameter type",
			Param:   p.Name(),
		}
	}

	p.found = true
	return nil
}

func (p *Param) conversionError(text string, cause error) *ParseError {
	return &ParseError{
		Type:    ErrorTypeConversion,
		Message: "invalid " + p.slot.kind.String() + " value for " + p.Name() + ": " + strconv.Quote(text),
		Param:   p.Name(),
		Cause:   cause,
	}
}
