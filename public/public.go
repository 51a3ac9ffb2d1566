// Package public embeds the static assets served under /assets/.
package public

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"io/fs"
	"path"
	"sort"
)

//go:embed assets
var embedded embed.FS

// Asset is one embedded file with its precomputed ETag.
type Asset struct {
	Name        string
	Data        []byte
	ETag        string
	ContentType string
}

// Assets returns the embedded files keyed by their path below assets/, sorted by name.
func Assets() ([]Asset, error) {
	var out []Asset
	err := fs.WalkDir(embedded, "assets", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := embedded.ReadFile(p)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(data)
		out = append(out, Asset{
			Name:        p[len("assets/"):],
			Data:        data,
			ETag:        `W/"` + hex.EncodeToString(sum[:]) + `"`,
			ContentType: contentType(p),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	}
	return "application/octet-stream"
}
