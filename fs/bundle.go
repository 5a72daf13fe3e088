// Package fs reads and writes sites as directory bundles.
package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
)

// Bundle file names.
const (
	HTMLFile = "index.html"
	CSSFile  = "styles.css"
	JSFile   = "script.js"
)

// ReadBundle reads the HTML, CSS and JS of a site from dir. index.html is
// required; the stylesheet and script are optional.
func ReadBundle(dir, name string) (*rosh.Site, error) {
	html, err := readFile(dir, HTMLFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, rosh.Errorf(rosh.EINVALID, "%s not found in %s", HTMLFile, dir)
	}
	if err != nil {
		return nil, err
	}

	css, err := readFile(dir, CSSFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	js, err := readFile(dir, JSFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &rosh.Site{Name: name, HTML: html, CSS: css, JS: js}, nil
}

func readFile(dir, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteBundle writes site to dir. Files are written to dir.tmp first and
// moved into place once all of them succeed, replacing any existing dir.
func WriteBundle(dir string, site *rosh.Site) error {
	tmp := filepath.Clean(dir) + ".tmp"
	if err := os.RemoveAll(tmp); err != nil {
		return err
	}
	if err := os.MkdirAll(tmp, 0755); err != nil {
		return err
	}

	files := []struct {
		name    string
		content string
	}{
		{HTMLFile, site.HTML},
		{CSSFile, site.CSS},
		{JSFile, site.JS},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(tmp, f.name), []byte(f.content), 0644); err != nil {
			os.RemoveAll(tmp)
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	return os.Rename(tmp, dir)
}
