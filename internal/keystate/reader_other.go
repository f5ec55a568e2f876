//go:build !linux && !windows

package keystate

func newPlatformReader() Reader {
	return unsupportedReader{}
}
