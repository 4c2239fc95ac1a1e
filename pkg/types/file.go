package types

// FileEntry is a file found in the target directory. It is immutable once
// listed.
type FileEntry struct {
	// Name is the original file name, without directory
	Name string `json:"name"`
	// Stem is Name without Ext
	Stem string `json:"stem"`
	// Ext is the extension including its leading dot, or ""
	Ext string `json:"ext"`
}
