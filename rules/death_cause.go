package rules

// Cause records why a game ended.
type Cause string

const (
	// CauseNone is the cause of a game that is still running.
	CauseNone Cause = ""
	// CauseWallCollision is when the head runs off a walled grid.
	CauseWallCollision Cause = "wall-collision"
	// CauseSelfCollision is when the head runs into the snake's own body.
	CauseSelfCollision Cause = "self-collision"
	// CauseBoardFull is when the snake covers every cell. This is a win.
	CauseBoardFull Cause = "board-full"
)

// Won reports whether c is a winning end.
func (c Cause) Won() bool { return c == CauseBoardFull }
