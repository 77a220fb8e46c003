package bigseq

// cursor walks logical positions of a pager. Stepping past either end of
// the resident segment switches to the neighbouring one; steps within the
// segment cost no I/O since switchTo is a no-op for the resident segment.
type cursor struct {
	p   *pager
	pos int
	off int
}

// seek positions the cursor at logical index i, making its segment resident.
func (c *cursor) seek(i int) error {
	seg, off := c.p.locate(i)
	if err := c.p.switchTo(seg); err != nil {
		return err
	}
	c.pos, c.off = i, off
	return nil
}

// next advances one position.
func (c *cursor) next() error {
	return c.seek(c.pos + 1)
}

// prev steps back one position.
func (c *cursor) prev() error {
	return c.seek(c.pos - 1)
}

func (c *cursor) value() int64 {
	return c.p.read(c.off)
}

// swap stores v at the cursor and returns the value it replaced.
func (c *cursor) swap(v int64) int64 {
	return c.p.swap(c.off, v)
}
