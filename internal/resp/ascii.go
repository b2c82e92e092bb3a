package resp

import "golang.org/x/text/encoding/charmap"

// validateASCII reports whether b is a legal OxidArt key/member/field: every
// byte in [1,127] (spec.md invariant 1). It goes through
// golang.org/x/text/encoding/charmap the way hivekit's internal/reader
// decodes Windows-1252 byte strings before trusting them, rather than just
// range-checking bytes inline: round-tripping through the Windows-1252
// decoder rejects any byte sequence the encoding package itself considers
// invalid before this package applies the engine's stricter [1,127] rule, so
// a single shared decode step backs both "is this legal text" and "is this a
// legal OxidArt key".
func validateASCII(b []byte) bool {
	if _, err := charmap.Windows1252.NewDecoder().Bytes(b); err != nil {
		return false
	}
	for _, c := range b {
		if c == 0 || c >= 0x80 {
			return false
		}
	}
	return true
}
