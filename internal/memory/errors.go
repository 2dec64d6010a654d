package memory

import "errors"

var (
	// ErrProcessNotFound is returned when the game process is not running,
	// cannot be opened, or exited while attached.
	ErrProcessNotFound = errors.New("memory: process not found")

	// ErrInaccessibleMemory is returned when any read along a pointer chain
	// targets unmapped or protected memory. Transient during loading screens
	// and entity respawns; callers skip the tick and try again.
	ErrInaccessibleMemory = errors.New("memory: inaccessible memory")

	// ErrNoModule is returned when the main module base address cannot be
	// located in the target process.
	ErrNoModule = errors.New("memory: module base not found")
)
