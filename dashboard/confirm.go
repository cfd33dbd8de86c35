package dashboard

import "sync"

// Confirm is the two-step delete flow: a target is selected, then either
// confirmed (dispatching the deletion) or cancelled (dropping the target
// with no side effect).
type Confirm struct {
	mu       sync.Mutex
	target   string
	selected bool
	dispatch func(id string) error
}

func NewConfirm(dispatch func(id string) error) *Confirm {
	return &Confirm{dispatch: dispatch}
}

func (c *Confirm) Select(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = id
	c.selected = true
}

// Target reports the pending selection, for rendering the dialog.
func (c *Confirm) Target() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target, c.selected
}

// Confirm dispatches the deletion of the selected target and clears the
// selection. Confirming with nothing selected is a no-op.
func (c *Confirm) Confirm() error {
	c.mu.Lock()
	if !c.selected {
		c.mu.Unlock()
		return nil
	}
	target := c.target
	c.target = ""
	c.selected = false
	c.mu.Unlock()

	return c.dispatch(target)
}

func (c *Confirm) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = ""
	c.selected = false
}
