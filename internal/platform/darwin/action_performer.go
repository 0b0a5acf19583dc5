//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>

static int ax_copy_actions(CFTypeRef el, CFTypeRef *out) {
    CFArrayRef names = NULL;
    AXError err = AXUIElementCopyActionNames((AXUIElementRef)el, &names);
    *out = names;
    return (int)err;
}

static int ax_perform_action(CFTypeRef el, const char *action) {
    CFStringRef name = CFStringCreateWithCString(NULL, action, kCFStringEncodingUTF8);
    if (!name) return kAXErrorIllegalArgument;
    AXError err = AXUIElementPerformAction((AXUIElementRef)el, name);
    CFRelease(name);
    return (int)err;
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/mj1618/axtree/internal/platform"
)

func (a *Accessibility) Actions(el platform.Element) ([]string, error) {
	e, ok := asElement(el)
	if !ok {
		return nil, fmt.Errorf("invalid element handle %T", el)
	}
	var names C.CFTypeRef
	rc := C.ax_copy_actions(e.ref, &names)
	runtime.KeepAlive(e)
	if rc != 0 {
		return nil, fmt.Errorf("AXUIElementCopyActionNames: %w", axError(rc))
	}
	if names == 0 {
		return []string{}, nil
	}

	items, _ := convert(names).([]any)
	actions := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			actions = append(actions, s)
		}
	}
	return actions, nil
}

func (a *Accessibility) PerformAction(el platform.Element, action string) error {
	e, ok := asElement(el)
	if !ok {
		return fmt.Errorf("invalid element handle %T", el)
	}
	cAction := C.CString(action)
	defer C.free(unsafe.Pointer(cAction))

	rc := C.ax_perform_action(e.ref, cAction)
	runtime.KeepAlive(e)
	if rc != 0 {
		return fmt.Errorf("AXUIElementPerformAction(%s): %w", action, axError(rc))
	}
	return nil
}
