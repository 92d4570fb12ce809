package moves

// Cursor walks a Log front to back without modifying it.
type Cursor struct {
	log Log
	pos int
}

func NewCursor(l Log) *Cursor { return &Cursor{log: l} }

// Next returns the move under the cursor and advances past it.
func (c *Cursor) Next() (Move, bool) {
	if c.pos >= len(c.log) {
		return Move{}, false
	}
	m := c.log[c.pos]
	c.pos++
	return m, true
}

func (c *Cursor) Pos() int       { return c.pos }
func (c *Cursor) Len() int       { return len(c.log) }
func (c *Cursor) Remaining() int { return len(c.log) - c.pos }
func (c *Cursor) Done() bool     { return c.pos >= len(c.log) }
