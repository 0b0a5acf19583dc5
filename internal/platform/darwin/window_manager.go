//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>
#include <string.h>

// Returns a malloc'd name of the frontmost application, or NULL.
static char *frontmost_app(int *pid) {
    @autoreleasepool {
        NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
        if (app == nil) return NULL;
        *pid = (int)[app processIdentifier];
        NSString *name = [app localizedName];
        const char *s = name ? [name UTF8String] : NULL;
        return strdup(s ? s : "");
    }
}

static CFTypeRef ax_application(int pid) {
    return (CFTypeRef)AXUIElementCreateApplication((pid_t)pid);
}
*/
import "C"

import (
	"fmt"

	"github.com/mj1618/axtree/internal/platform"
)

// Host implements platform.Host for macOS.
type Host struct{}

// NewHost creates the macOS host adapter.
func NewHost() *Host {
	return &Host{}
}

func (h *Host) FrontmostApplication() (platform.App, error) {
	var pid C.int
	name := C.frontmost_app(&pid)
	if name == nil {
		return platform.App{}, platform.ErrNoFrontmostApp
	}
	appName := goString(name)
	if pid <= 0 {
		return platform.App{}, platform.ErrNoFrontmostApp
	}
	return platform.App{Name: appName, PID: int(pid)}, nil
}

func (h *Host) ApplicationElement(pid int) (platform.Element, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("invalid pid %d", pid)
	}
	ref := C.ax_application(C.int(pid))
	if ref == 0 {
		return nil, fmt.Errorf("AXUIElementCreateApplication(%d) failed", pid)
	}
	return newElement(ref), nil
}
