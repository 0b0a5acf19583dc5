//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>

static int ax_set(CFTypeRef el, const char *attribute, CFTypeRef value) {
    CFStringRef attr = CFStringCreateWithCString(NULL, attribute, kCFStringEncodingUTF8);
    if (!attr) return kAXErrorIllegalArgument;
    AXError err = AXUIElementSetAttributeValue((AXUIElementRef)el, attr, value);
    CFRelease(attr);
    return (int)err;
}

static int ax_set_bool(CFTypeRef el, const char *attribute, int value) {
    return ax_set(el, attribute, value ? kCFBooleanTrue : kCFBooleanFalse);
}

static int ax_set_string(CFTypeRef el, const char *attribute, const char *value) {
    CFStringRef s = CFStringCreateWithCString(NULL, value, kCFStringEncodingUTF8);
    if (!s) return kAXErrorIllegalArgument;
    int rc = ax_set(el, attribute, s);
    CFRelease(s);
    return rc;
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/mj1618/axtree/internal/platform"
)

// SetAttribute writes a bool or string attribute.
func (a *Accessibility) SetAttribute(el platform.Element, name string, value any) error {
	e, ok := asElement(el)
	if !ok {
		return fmt.Errorf("invalid element handle %T", el)
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var rc C.int
	switch v := value.(type) {
	case bool:
		flag := C.int(0)
		if v {
			flag = 1
		}
		rc = C.ax_set_bool(e.ref, cName, flag)
	case string:
		cValue := C.CString(v)
		defer C.free(unsafe.Pointer(cValue))
		rc = C.ax_set_string(e.ref, cName, cValue)
	default:
		return fmt.Errorf("unsupported value type %T for %s", value, name)
	}
	runtime.KeepAlive(e)

	if rc != 0 {
		return fmt.Errorf("AXUIElementSetAttributeValue(%s): %w", name, axError(rc))
	}
	return nil
}
