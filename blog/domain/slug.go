package domain

import (
	"regexp"
	"strings"
)

// slugSpaceClass is the whitespace set of the stored-slug contract:
// ASCII whitespace including vertical tab, the Unicode space
// separators, line and paragraph separators, and the BOM.
const slugSpaceClass = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9` + slugSpaceClass + `-]`)
	slugWhitespace = regexp.MustCompile(`[` + slugSpaceClass + `]+`)
	slugHyphenRun  = regexp.MustCompile(`-+`)

	accentReplacer = strings.NewReplacer(
		"á", "a", "ä", "a", "â", "a", "à", "a",
		"é", "e", "ë", "e", "ê", "e", "è", "e",
		"í", "i", "ï", "i", "î", "i", "ì", "i",
		"ó", "o", "ö", "o", "ô", "o", "ò", "o",
		"ú", "u", "ü", "u", "û", "u", "ù", "u",
		"ñ", "n",
	)
)

// EncodeSlug derives the URL-safe identifier for a post from its title.
// The transformation order is part of the stored-file and slug-column
// contract and must not be rearranged: lowercase, map accented vowels
// and ñ to ASCII, drop everything that is not a lowercase letter,
// digit, whitespace, or hyphen, turn whitespace runs into single
// hyphens, collapse hyphen runs, then trim.
func EncodeSlug(title string) string {
	s := strings.ToLower(title)
	s = accentReplacer.Replace(s)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugHyphenRun.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}
