package service

import "strings"

// NormalizeInternalCode reduces a raw internal code to its canonical form:
// every non-digit character is stripped, even digits are stripped, and the
// surviving odd digits are prefixed with "M". Empty input stays empty.
// Non-empty input that does not start with M (case-insensitive) is rejected.
//
// The code format went through several revisions; the canonical rule here is
// the permissive one: "M" followed only by odd digits.
func NormalizeInternalCode(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if raw[0] != 'M' && raw[0] != 'm' {
		return "", fieldErr("internal_code", "must start with M")
	}

	var sb strings.Builder
	sb.WriteByte('M')
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if (r-'0')%2 == 1 {
			sb.WriteRune(r)
		}
	}
	return sb.String(), nil
}
