package listing

import "strings"

// SplitExt splits name into stem and extension at the last dot. Leading
// dots belong to the stem, so ".bashrc" has no extension while "a.tar.gz"
// has ".gz" and "notes." has ".".
func SplitExt(name string) (stem, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name, ""
	}
	if strings.Trim(name[:dot], ".") == "" {
		return name, ""
	}
	return name[:dot], name[dot:]
}
