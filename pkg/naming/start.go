package naming

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/renumber/pkg/errors"
)

// ParseStartNumber parses a start number typed by the user
func ParseStartNumber(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidConfig, "invalid start number %q", s)
	}
	if n < 0 {
		return 0, errors.Newf(errors.ErrInvalidConfig, "invalid start number %q: cannot be negative", s)
	}
	return n, nil
}
