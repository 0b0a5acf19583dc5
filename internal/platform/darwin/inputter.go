//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices -framework Foundation
#include <CoreGraphics/CoreGraphics.h>
#include <stdbool.h>

static int cg_post_key(CGKeyCode code, int down) {
    CGEventRef ev = CGEventCreateKeyboardEvent(NULL, code, down ? true : false);
    if (!ev) return -1;
    CGEventPost(kCGHIDEventTap, ev);
    CFRelease(ev);
    return 0;
}
*/
import "C"

import "fmt"

// PostKeyEvent posts one key-down or key-up event to the HID event tap.
func (h *Host) PostKeyEvent(code uint16, down bool) error {
	d := C.int(0)
	if down {
		d = 1
	}
	if C.cg_post_key(C.CGKeyCode(code), d) != 0 {
		return fmt.Errorf("failed to create keyboard event for key code %#x", code)
	}
	return nil
}
