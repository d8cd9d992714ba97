package printer

// Error reports a node the printer cannot print. It is raised with panic.
type Error struct {
	Node string
}

func (e *Error) Error() string {
	return "printer: unexpected " + e.Node + " node"
}
