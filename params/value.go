package params

// Value resolution for option tokens. The returned consumption counts
// tokens starting at the current one: an embedded value keeps it at 1, a
// value in the following token raises it to 2. Attachment priority is
// fixed: embedded '=' (long) beats an embedded suffix (short) beats the
// following token. Positional tokens need no resolver; the whole token is
// the value and consumption is always 1.

// resolveLong extracts the value of a long option token. eq is the offset
// of the first '=' in the token, or -1 when absent.
func resolveLong(tokens []string, pos, eq int, name string) (string, int, error) {
	if eq >= 0 {
		return tokens[pos][eq+1:], 1, nil
	}
	if pos+1 >= len(tokens) {
		return "", 0, missingValueError(name)
	}
	return tokens[pos+1], 2, nil
}

// resolveShort extracts the value of a short option matched at byte
// offset ci within a cluster token.
func resolveShort(tokens []string, pos, ci int, name string) (string, int, error) {
	tok := tokens[pos]
	if ci+1 < len(tok) {
		return tok[ci+1:], 1, nil
	}
	if pos+1 >= len(tokens) {
		return "", 0, missingValueError(name)
	}
	return tokens[pos+1], 2, nil
}

func missingValueError(name string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingValue,
		Message: "option requires a value: " + name,
		Param:   name,
	}
}
