package image

import "fmt"

// LoadError indicates a source image never became usable: its bytes were
// readable but could not be decoded into an image.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// AccessError indicates the image bytes could not be obtained at all
// (missing file, permission problem, or a failed HTTP fetch).
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot read image %s: %v (check that the path exists and is readable; for URLs, that the server is reachable and allows access)", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }
