package naming

import (
	"strings"

	"github.com/arthur-debert/renumber/pkg/errors"
)

// IllegalChars are the characters no generated name may contain, on any
// platform. It is the set Windows forbids in file names.
const IllegalChars = `<>:"/\|?*`

// ContainsIllegal returns the first illegal character in name
func ContainsIllegal(name string) (rune, bool) {
	i := strings.IndexAny(name, IllegalChars)
	if i < 0 {
		return 0, false
	}
	return rune(name[i]), true
}

// CheckName returns ErrIllegalChar when name contains an illegal character
func CheckName(name string) error {
	if r, bad := ContainsIllegal(name); bad {
		return errors.Newf(errors.ErrIllegalChar, "generated name %q contains illegal character %q", name, r).
			WithDetail(errors.DetailName, name).
			WithDetail(errors.DetailChar, string(r))
	}
	return nil
}
