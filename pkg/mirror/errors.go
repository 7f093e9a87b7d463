package mirror

import "fmt"

// ConfigurationError means the mirror store path exists but is not a directory.
type ConfigurationError struct {
	Path string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("mirror store %s is not a directory", e.Path)
}

// InvalidMirrorError means a store subdirectory could not be opened as a repository.
type InvalidMirrorError struct {
	Name string
	Path string
	Err  error
}

func (e *InvalidMirrorError) Error() string {
	return fmt.Sprintf("invalid mirror %q at %s: %v", e.Name, e.Path, e.Err)
}

func (e *InvalidMirrorError) Unwrap() error { return e.Err }

// CloneError means a missing repository could not be cloned.
type CloneError struct {
	Name string
	URL  string
	Err  error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("cloning %q from %s: %v", e.Name, e.URL, e.Err)
}

func (e *CloneError) Unwrap() error { return e.Err }

// UpdateError means a mirror could not be brought up to date with its remote.
type UpdateError struct {
	Name string
	Err  error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("updating %q: %v", e.Name, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }
