package driver

import (
	"fmt"

	"headspace/internal/diag"
	"headspace/internal/source"
)

// LoadFile reads path into a fresh FileSet. A failed read is recorded in
// bag as IO4001 and returned.
func LoadFile(path string, bag *diag.Bag) (*source.FileSet, *source.File, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		if bag != nil {
			bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
		}
		return fs, nil, fmt.Errorf("load %s: %w", path, err)
	}
	return fs, fs.Get(id), nil
}

// LoadSource wraps an in-memory buffer. name is used for diagnostics and
// as the fallback module name.
func LoadSource(name string, content []byte) (*source.FileSet, *source.File) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return fs, fs.Get(id)
}
