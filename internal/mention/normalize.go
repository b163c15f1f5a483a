package mention

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// NormalizeSurface maps a surface form to the key used for dictionary lookup
// and clustering: NFKC, case folded, inner whitespace collapsed.
func NormalizeSurface(surface string) string {
	s := norm.NFKC.String(surface)
	s = folder.String(s)
	return strings.Join(strings.Fields(s), " ")
}
