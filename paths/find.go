// Package paths locates and reads GIF datafiles on behalf of the
// decoder, which itself only ever sees a byte buffer.
package paths

import (
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// ErrNotFound reports that a datafile could not be located in any of
// the search locations.
var ErrNotFound = errors.New("paths: file not found")

func possiblePaths(fileName string) []string {
	return []string{
		fileName,
		"datafiles/" + fileName,
		os.Getenv("GOPATH") + "/src/badc0de.net/pkg/go-gif/datafiles/" + fileName,
		os.Args[0] + ".runfiles/go_gif/datafiles/" + fileName,
	}
}

// Find locates the passed datafile shortname and returns an absolute
// or relative path to find the datafile at.
//
// For example, for "sample.gif" it may return "datafiles/sample.gif".
func Find(fileName string) string {
	for _, path := range possiblePaths(fileName) {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}

	return ""
}

// Open locates the passed file in the same locations that Find would
// look, and opens it. If Find returns an empty string, an error is
// returned.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errors.Wrapf(ErrNotFound, "%q", fileName)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	return f, nil
}

// NoFindOpen opens the passed path directly, skipping the Find search.
func NoFindOpen(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	f, err := os.Open(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%q", fileName)
		}
		return nil, errors.Wrapf(err, "opening %q", fileName)
	}
	return f, nil
}

// ReadFile locates the passed file and returns its entire content.
func ReadFile(fileName string) ([]byte, error) {
	f, err := Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", fileName)
	}
	return b, nil
}
