package fu

import (
	"go-ml.dev/pkg/iokit"
	"os"
	"path/filepath"
)

/*
DataPath resolves a dataset name. Absolute paths and files existing relative
to the working directory are returned as is, other names are looked up in the
go-ml datasets cache.
*/
func DataPath(s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	if _, err := os.Stat(s); err == nil {
		return s
	}
	return iokit.CacheFile(filepath.Join("go-ml", "Datasets", s))
}
