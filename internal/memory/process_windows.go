//go:build windows

package memory

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/windows"
)

const stillActive = 259 // STILL_ACTIVE exit code

type winProcess struct {
	name   string
	pid    int32
	handle windows.Handle
	base   uintptr
}

// Open attaches to the named process with read-only access and locates its
// main module base. Returns ErrProcessNotFound when no such process is
// running or it cannot be opened.
func Open(name string) (Process, error) {
	pid, err := findPid(name)
	if err != nil {
		return nil, err
	}

	handle, err := windows.OpenProcess(
		windows.PROCESS_VM_READ|windows.PROCESS_QUERY_INFORMATION,
		false, uint32(pid),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: open pid %d: %v", ErrProcessNotFound, pid, err)
	}

	base, err := moduleBase(uint32(pid), name)
	if err != nil {
		windows.CloseHandle(handle)
		return nil, err
	}

	return &winProcess{name: name, pid: pid, handle: handle, base: base}, nil
}

func findPid(name string) (int32, error) {
	pids, err := process.Pids()
	if err != nil {
		return 0, fmt.Errorf("%w: list pids: %v", ErrProcessNotFound, err)
	}
	for _, pid := range pids {
		p, err := process.NewProcess(pid)
		if err != nil {
			continue
		}
		n, err := p.Name()
		if err != nil {
			continue
		}
		if strings.EqualFold(n, name) {
			return pid, nil
		}
	}
	return 0, ErrProcessNotFound
}

// moduleBase walks the module list of the target process and returns the
// load address of the module matching the executable name.
func moduleBase(pid uint32, name string) (uintptr, error) {
	snap, err := windows.CreateToolhelp32Snapshot(
		windows.TH32CS_SNAPMODULE|windows.TH32CS_SNAPMODULE32, pid,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: module snapshot: %v", ErrNoModule, err)
	}
	defer windows.CloseHandle(snap)

	var entry windows.ModuleEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err = windows.Module32First(snap, &entry); err == nil; err = windows.Module32Next(snap, &entry) {
		if strings.EqualFold(windows.UTF16ToString(entry.Module[:]), name) {
			return uintptr(entry.ModBaseAddr), nil
		}
	}
	return 0, ErrNoModule
}

func (p *winProcess) Name() string        { return p.name }
func (p *winProcess) Pid() int32          { return p.pid }
func (p *winProcess) ModuleBase() uintptr { return p.base }

func (p *winProcess) Alive() bool {
	var code uint32
	if err := windows.GetExitCodeProcess(p.handle, &code); err != nil {
		return false
	}
	return code == stillActive
}

func (p *winProcess) Close() error {
	return windows.CloseHandle(p.handle)
}

func (p *winProcess) read(addr uintptr, buf []byte) error {
	var done uintptr
	err := windows.ReadProcessMemory(p.handle, addr, &buf[0], uintptr(len(buf)), &done)
	if err != nil || done != uintptr(len(buf)) {
		return fmt.Errorf("%w: read 0x%X", ErrInaccessibleMemory, addr)
	}
	return nil
}

func (p *winProcess) ReadPointer(addr uintptr) (uint64, error) {
	var buf [8]byte
	if err := p.read(addr, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (p *winProcess) ReadFloat64(addr uintptr) (float64, error) {
	v, err := p.ReadPointer(addr)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (p *winProcess) ReadInt32(addr uintptr) (int32, error) {
	var buf [4]byte
	if err := p.read(addr, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}
