package rewrite

import (
	"os"
	"path/filepath"
)

// 💾 WriteFileAtomic replaces path with content so that readers only ever see
// the old or the new file. The temporary file lives next to path so the
// final rename never crosses a filesystem boundary. Permission bits of an
// existing file are kept. A symbolic link is followed and the file it points
// to is replaced, leaving the link in place.
func WriteFileAtomic(path string, content []byte) (err error) {
	if info, lstatErr := os.Lstat(path); lstatErr == nil && info.Mode()&os.ModeSymlink != 0 {
		target, evalErr := filepath.EvalSymlinks(path)
		if evalErr != nil {
			return &IOError{Op: "resolve link", Path: path, Err: evalErr}
		}
		path = target
	}

	perm := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".cdnpin-*")
	if err != nil {
		return &IOError{Op: "create temp for", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return &IOError{Op: "write temp for", Path: path, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &IOError{Op: "sync temp for", Path: path, Err: err}
	}
	if err = tmp.Chmod(perm); err != nil {
		return &IOError{Op: "chmod temp for", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &IOError{Op: "close temp for", Path: path, Err: err}
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return &IOError{Op: "replace", Path: path, Err: err}
	}

	return nil
}
