package inline

import (
	"io/fs"
	"os"

	"github.com/matzehuels/vizinline/pkg/errors"
)

// AssetPath is the location of the front-end bundle inside the asset
// filesystem.
const AssetPath = "lib/interpret-inline.js"

// BundleName is the module name the bundle registers under.
const BundleName = "interpret-inline"

// AssetDir returns an asset filesystem rooted at dir.
func AssetDir(dir string) fs.FS { return os.DirFS(dir) }

// readBundle reads the script bundle. Any failure is fatal to the render.
func readBundle(assets fs.FS) (string, error) {
	data, err := fs.ReadFile(assets, AssetPath)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeAssetRead, err, "read %s", AssetPath)
	}
	return string(data), nil
}
