package mapping

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	errDefault      error
)

// BuiltinFiles parses the mapping files shipped with the binary, in name
// order.
func BuiltinFiles() ([]*File, error) {
	names, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil, err
	}

	sort.Strings(names)

	files := make([]*File, 0, len(names))

	for _, name := range names {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, err
		}

		f, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("builtin %s: %w", path.Base(name), err)
		}

		files = append(files, f)
	}

	return files, nil
}

// Default returns the registry built from the builtin mapping files.
// It is built once and shared.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		files, err := BuiltinFiles()
		if err != nil {
			errDefault = err
			return
		}

		defaultRegistry, errDefault = Build(files...)
	})

	return defaultRegistry, errDefault
}

// Load builds a registry from the builtin files followed by the files at
// paths, so user definitions replace builtin keys.
func Load(paths ...string) (*Registry, error) {
	files, err := BuiltinFiles()
	if err != nil {
		return nil, err
	}

	for _, p := range paths {
		f, err := LoadFile(p)
		if err != nil {
			return nil, err
		}

		files = append(files, f)
	}

	return Build(files...)
}
