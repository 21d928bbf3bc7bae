package engine

// System represents a behavior that runs once per frame. Systems read the
// board through the frame and queue mutations on frame.Commands; they may keep
// custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
