// Package intern provides pre-allocated short-option names for go-params.
// The cluster scan forms one single-character alias per scanned byte;
// handing out canonical "-x" strings keeps that loop allocation-free.
package intern

// ShortName returns the canonical marker-prefixed name for a short option
// character, e.g. 'c' -> "-c".
func ShortName(b byte) string {
	switch {
	case b >= 'a' && b <= 'z':
		return shortNames[b-'a']
	case b >= 'A' && b <= 'Z':
		return shortNames[26+b-'A']
	case b >= '0' && b <= '9':
		return shortNames[52+b-'0']
	}
	// Rare case: non-alphanumeric option character.
	return string([]byte{'-', b})
}

// Pre-allocated marker-prefixed names for zero-allocation cluster scans.
// a-z (0-25), A-Z (26-51), 0-9 (52-61)
var shortNames = [62]string{
	"-a", "-b", "-c", "-d", "-e", "-f", "-g", "-h", "-i", "-j", "-k", "-l", "-m",
	"-n", "-o", "-p", "-q", "-r", "-s", "-t", "-u", "-v", "-w", "-x", "-y", "-z",
	"-A", "-B", "-C", "-D", "-E", "-F", "-G", "-H", "-I", "-J", "-K", "-L", "-M",
	"-N", "-O", "-P", "-Q", "-R", "-S", "-T", "-U", "-V", "-W", "-X", "-Y", "-Z",
	"-0", "-1", "-2", "-3", "-4", "-5", "-6", "-7", "-8", "-9",
}
