package entities

// Patch is the raw content of a patch as fetched, before any renaming.
type Patch struct {
	Content []byte

	// OriginalName is the package the patch was taken from. It is empty when
	// the patch came from a local file, since no name can be inferred then.
	OriginalName string
}

// HasOriginalName reports whether the source package of the patch is known.
func (p Patch) HasOriginalName() bool {
	return p.OriginalName != ""
}
