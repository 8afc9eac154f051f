package board

import "fmt"

// UnsupportedConnectStyleError indicates a serialized connect-style value
// the builder does not implement (currently only "thermal"). It is a
// deserialization-time error, never raised by the builder itself.
type UnsupportedConnectStyleError struct {
	Name string
}

func (e *UnsupportedConnectStyleError) Error() string {
	return fmt.Sprintf("board: unsupported connect style %q", e.Name)
}
