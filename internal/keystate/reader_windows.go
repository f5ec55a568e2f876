//go:build windows

package keystate

import (
	"syscall"
)

// Virtual key codes for the lock keys.
const (
	vkCapital = 0x14
	vkNumLock = 0x90
	vkScroll  = 0x91
)

var (
	user32          = syscall.NewLazyDLL("user32.dll")
	procGetKeyState = user32.NewProc("GetKeyState")
)

// keyStateReader reads lock-key state via the user32 GetKeyState API.
// The low-order bit of the returned value is the toggle state.
type keyStateReader struct{}

func newPlatformReader() Reader {
	if err := procGetKeyState.Find(); err != nil {
		return unsupportedReader{}
	}
	return keyStateReader{}
}

func (keyStateReader) Read() State {
	return State{
		Caps:   toggled(vkCapital),
		Num:    toggled(vkNumLock),
		Scroll: toggled(vkScroll),
	}
}

func (keyStateReader) Supported() bool { return true }

func toggled(vk uintptr) bool {
	ret, _, _ := procGetKeyState.Call(vk)
	return ret&0x0001 != 0
}
