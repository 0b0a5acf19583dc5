//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>

static int is_trusted(int prompt) {
    if (!prompt) {
        return AXIsProcessTrusted();
    }
    const void *keys[] = { kAXTrustedCheckOptionPrompt };
    const void *values[] = { kCFBooleanTrue };
    CFDictionaryRef opts = CFDictionaryCreate(NULL, keys, values, 1,
        &kCFTypeDictionaryKeyCallBacks, &kCFTypeDictionaryValueCallBacks);
    int trusted = AXIsProcessTrustedWithOptions(opts);
    if (opts) CFRelease(opts);
    return trusted;
}
*/
import "C"

// CheckPermission reports whether the process has macOS accessibility
// permission. With prompt set, macOS shows its one-time grant dialog when
// permission is missing. The result is never cached: the user can revoke
// the grant while the process runs.
func (h *Host) CheckPermission(prompt bool) bool {
	p := C.int(0)
	if prompt {
		p = 1
	}
	return C.is_trusted(p) != 0
}
