// Package disclosure implements the state of an accordion list: which item
// is expanded, which is hovered and which have been seen.
//
// Every item runs a two-state machine (collapsed, expanded). Toggling an
// item while another one is open collapses the other one and expands the
// target inside a single critical section, so no snapshot ever contains two
// expanded items. The visited set only grows.
//
// Calls with unknown item ids and transitions the machine rejects are
// invariant violations. A controller created WithStrict(true) returns them
// as errors wrapping ErrInvariantViolation; otherwise they are logged and
// the state is left as it was.
//
//	c, _ := disclosure.NewController(4, disclosure.WithStrict(environment.Strict(ctx)))
//	_ = c.Toggle(ctx, 2)
//	_ = c.Toggle(ctx, 0) // item 2 collapses
//	c.State().Expanded   // 0
package disclosure
