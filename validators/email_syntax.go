// SPDX-License-Identifier: GPL-3.0-only

package validators

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

const (
	maxLocalPartLength = 64
	maxDomainLength    = 253
	maxLabelLength     = 63
	maxAddressLength   = 254
)

// Special-use names that can never receive mail.
var specialUseDomains = []string{"arpa", "invalid", "local", "localhost", "onion", "test"}

// atext characters allowed unquoted in a local part besides letters and digits.
const localPartSpecials = "!#$%&'*+-/=?^_`{|}~"

// SyntaxError describes why an address failed the format check. The message is
// meant for end users.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

func syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}

type ParsedAddress struct {
	LocalPart string
	// ASCII (IDNA) form, lower case
	Domain     string
	Normalized string
}

// ParseAddress checks raw against dot-atom address syntax with RFC 5321 length
// limits. Quoted local parts and domain literals are rejected.
func ParseAddress(raw string) (ParsedAddress, error) {
	if !utf8.ValidString(raw) {
		return ParsedAddress{}, syntaxErrorf("The email address contains bytes that are not valid UTF-8.")
	}
	at := strings.LastIndexByte(raw, '@')
	if at < 0 {
		return ParsedAddress{}, syntaxErrorf("The email address is not valid. It must have exactly one @-sign.")
	}
	local, domain := raw[:at], raw[at+1:]
	if strings.ContainsRune(local, '@') {
		return ParsedAddress{}, syntaxErrorf("The email address is not valid. It must have exactly one @-sign.")
	}
	if local == "" {
		return ParsedAddress{}, syntaxErrorf("There must be something before the @-sign.")
	}
	if domain == "" {
		return ParsedAddress{}, syntaxErrorf("There must be something after the @-sign.")
	}

	local = norm.NFC.String(local)
	if err := checkLocalPart(local); err != nil {
		return ParsedAddress{}, err
	}

	asciiDomain, err := normalizeEmailDomain(domain)
	if err != nil {
		return ParsedAddress{}, err
	}

	normalized := local + "@" + asciiDomain
	if over := len(normalized) - maxAddressLength; over > 0 {
		return ParsedAddress{}, syntaxErrorf("The email address is too long (%d %s too many).", over, plural(over))
	}

	return ParsedAddress{
		LocalPart:  local,
		Domain:     asciiDomain,
		Normalized: normalized,
	}, nil
}

func checkLocalPart(local string) error {
	if over := len(local) - maxLocalPartLength; over > 0 {
		return syntaxErrorf("The email address is too long before the @-sign (%d %s too many).", over, plural(over))
	}

	var bad []string
	seen := map[rune]bool{}
	for _, r := range local {
		if isLocalPartRune(r) || seen[r] {
			continue
		}
		seen[r] = true
		bad = append(bad, fmt.Sprintf("%q", r))
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return syntaxErrorf("The email address contains invalid characters before the @-sign: %s.", strings.Join(bad, ", "))
	}

	switch {
	case strings.HasPrefix(local, "."):
		return syntaxErrorf("An email address cannot start with a period.")
	case strings.HasSuffix(local, "."):
		return syntaxErrorf("An email address cannot have a period immediately before the @-sign.")
	case strings.Contains(local, ".."):
		return syntaxErrorf("An email address cannot have two periods in a row.")
	}
	return nil
}

func isLocalPartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r == '.' ||
			('a' <= r && r <= 'z') ||
			('A' <= r && r <= 'Z') ||
			('0' <= r && r <= '9') ||
			strings.ContainsRune(localPartSpecials, r)
	}
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

func normalizeEmailDomain(domain string) (string, error) {
	switch {
	case strings.HasPrefix(domain, "["):
		return "", syntaxErrorf("A bracketed IP address after the @-sign is not allowed here.")
	case strings.HasPrefix(domain, "."):
		return "", syntaxErrorf("An email address cannot have a period immediately after the @-sign.")
	case strings.HasSuffix(domain, "."):
		return "", syntaxErrorf("An email address cannot end with a period.")
	case strings.Contains(domain, ".."):
		return "", syntaxErrorf("An email address cannot have two periods in a row.")
	}

	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return "", syntaxErrorf("The domain name %s contains invalid characters (%v).", domain, err)
	}
	ascii = strings.ToLower(ascii)

	if !strings.Contains(ascii, ".") {
		return "", syntaxErrorf("The part after the @-sign is not valid. It should have a period.")
	}
	if over := len(ascii) - maxDomainLength; over > 0 {
		return "", syntaxErrorf("The email address is too long after the @-sign (%d %s too many).", over, plural(over))
	}

	labels := strings.Split(ascii, ".")
	for _, label := range labels {
		if over := len(label) - maxLabelLength; over > 0 {
			return "", syntaxErrorf("After the @-sign, periods cannot be separated by so many characters (%d %s too many).", over, plural(over))
		}
	}

	tld := labels[len(labels)-1]
	if strings.Trim(tld, "0123456789") == "" {
		return "", syntaxErrorf("The part after the @-sign is not valid. It is not within a valid top-level domain.")
	}
	for _, special := range specialUseDomains {
		if ascii == special || strings.HasSuffix(ascii, "."+special) {
			return "", syntaxErrorf("The part after the @-sign is a special-use or reserved name that cannot be used with email.")
		}
	}

	return ascii, nil
}

func plural(n int) string {
	if n == 1 {
		return "character"
	}
	return "characters"
}
