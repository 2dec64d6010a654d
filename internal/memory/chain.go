package memory

import (
	"fmt"
	"strconv"
	"strings"
)

// PointerChain locates a value in the target process: the base offset is
// added to the module base address, then each offset is applied after
// dereferencing the current address. The chain is static config data and
// is never mutated after parsing.
type PointerChain struct {
	Base    uintptr
	Offsets []uintptr
}

// IsZero reports whether the chain was left unconfigured.
func (c PointerChain) IsZero() bool {
	return c.Base == 0 && len(c.Offsets) == 0
}

// ParseChain parses a base address and a comma-separated offset list as
// found in config_user.ini, e.g. ("0x064D8FD0", "0x30,0x8C8,0xB0").
// Both hex (0x-prefixed) and decimal values are accepted.
func ParseChain(base, offsets string) (PointerChain, error) {
	var c PointerChain

	b, err := parseAddr(base)
	if err != nil {
		return c, fmt.Errorf("memory: parse base %q: %w", base, err)
	}
	c.Base = b

	if strings.TrimSpace(offsets) == "" {
		return c, nil
	}
	for _, part := range strings.Split(offsets, ",") {
		off, err := parseAddr(part)
		if err != nil {
			return PointerChain{}, fmt.Errorf("memory: parse offset %q: %w", part, err)
		}
		c.Offsets = append(c.Offsets, off)
	}
	return c, nil
}

func parseAddr(s string) (uintptr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, err
	}
	return uintptr(v), nil
}

// Resolve walks the chain from moduleBase and returns the final address.
// Each level reads a 64-bit pointer at the current address, then adds the
// level's offset (the game ships as a 64-bit process). A failed read at
// any level yields ErrInaccessibleMemory; no partial result is returned.
func Resolve(r Reader, moduleBase uintptr, c PointerChain) (uintptr, error) {
	addr := moduleBase + c.Base
	for level, off := range c.Offsets {
		p, err := r.ReadPointer(addr)
		if err != nil {
			return 0, fmt.Errorf("%w: level %d at 0x%X", ErrInaccessibleMemory, level, addr)
		}
		addr = uintptr(p) + off
	}
	return addr, nil
}
