package hetvec

// Nop provides a Fallback method that does nothing. Embed it in a
// visitor so that pairs without their own handler are ignored.
type Nop struct{}

// Fallback implements the visitor fallback by ignoring its arguments.
func (Nop) Fallback(a, b any) {}
