//go:build unix

package term

import "golang.org/x/sys/unix"

// setPollTimeout switches the tty to non-blocking-with-timeout reads:
// VMIN=0, VTIME=1 means a read returns as soon as one byte is available
// and gives up after one decisecond otherwise.
func setPollTimeout(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}
