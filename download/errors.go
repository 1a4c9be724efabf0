package download

import "fmt"

// Error reports a failure while saving the image at Index (1-based).
// Err unwraps to core.ErrNetwork, core.ErrDownload or core.ErrFilesystem.
// SaveAll fills Saved with the paths written before the failure.
type Error struct {
	Index  int
	URL    string
	Path   string
	Status int
	Err    error
	Cause  error
	Saved  []string
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("image %d: GET %s: unexpected status %d", e.Index, e.URL, e.Status)
	case e.Path != "":
		return fmt.Sprintf("image %d: write %s: %v", e.Index, e.Path, e.Cause)
	default:
		return fmt.Sprintf("image %d: GET %s: %v", e.Index, e.URL, e.Cause)
	}
}

// Unwrap exposes both the classification sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

