package report

// Opener is the one command the control surface forwards.
type Opener interface {
	Open()
}

// ControlSurface is the narrow command channel between the submission trigger
// (the toolbar) and the submission flow, which are architecturally distant.
// The coordinator owns the surface; neither side reaches into the other's
// internals. Opening an already-open form is a no-op per the flow contract.
type ControlSurface struct {
	opener Opener
}

func NewControlSurface(opener Opener) *ControlSurface {
	return &ControlSurface{opener: opener}
}

func (c *ControlSurface) OpenSubmissionForm() {
	c.opener.Open()
}
