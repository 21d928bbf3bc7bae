package tetris

//go:generate go tool stringer -type=Command

// Command is an abstract player input, already decoded from whatever device
// produced it.
type Command uint8

const (
	RotateRight Command = iota
	MoveLeft
	MoveRight
	SoftDrop
	HardDrop
)

// AllCommands lists every Command in declaration order.
var AllCommands = [...]Command{RotateRight, MoveLeft, MoveRight, SoftDrop, HardDrop}
