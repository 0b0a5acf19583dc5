//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>

#define KIND_OTHER   0
#define KIND_STRING  1
#define KIND_BOOL    2
#define KIND_NUMBER  3
#define KIND_AXVALUE 4
#define KIND_ARRAY   5
#define KIND_ELEMENT 6

static int ax_copy_attr(CFTypeRef el, const char *name, CFTypeRef *out) {
    CFStringRef attr = CFStringCreateWithCString(NULL, name, kCFStringEncodingUTF8);
    if (!attr) return kAXErrorIllegalArgument;
    AXError err = AXUIElementCopyAttributeValue((AXUIElementRef)el, attr, out);
    CFRelease(attr);
    return (int)err;
}

static int cf_kind(CFTypeRef v) {
    CFTypeID t = CFGetTypeID(v);
    if (t == CFStringGetTypeID()) return KIND_STRING;
    if (t == CFBooleanGetTypeID()) return KIND_BOOL;
    if (t == CFNumberGetTypeID()) return KIND_NUMBER;
    if (t == AXValueGetTypeID()) return KIND_AXVALUE;
    if (t == CFArrayGetTypeID()) return KIND_ARRAY;
    if (t == AXUIElementGetTypeID()) return KIND_ELEMENT;
    return KIND_OTHER;
}

// Returns a malloc'd UTF-8 copy of a CFString, or NULL.
static char *cf_string_utf8(CFTypeRef v) {
    CFStringRef s = (CFStringRef)v;
    CFIndex len = CFStringGetLength(s);
    CFIndex max = CFStringGetMaximumSizeForEncoding(len, kCFStringEncodingUTF8) + 1;
    char *buf = malloc(max);
    if (!buf) return NULL;
    if (!CFStringGetCString(s, buf, max, kCFStringEncodingUTF8)) {
        free(buf);
        return NULL;
    }
    return buf;
}

static char *cf_describe(CFTypeRef v) {
    CFStringRef d = CFCopyDescription(v);
    if (!d) return NULL;
    char *s = cf_string_utf8(d);
    CFRelease(d);
    return s;
}

static int cf_bool(CFTypeRef v) {
    return CFBooleanGetValue((CFBooleanRef)v) ? 1 : 0;
}

// Returns 1 when the number is a floating point type.
static int cf_number(CFTypeRef v, double *f, long long *i) {
    CFNumberRef n = (CFNumberRef)v;
    if (CFNumberIsFloatType(n)) {
        CFNumberGetValue(n, kCFNumberDoubleType, f);
        return 1;
    }
    CFNumberGetValue(n, kCFNumberLongLongType, i);
    return 0;
}

#define VALUE_OTHER 0
#define VALUE_POINT 1
#define VALUE_SIZE  2
#define VALUE_RECT  3
#define VALUE_RANGE 4

static int ax_value_type(CFTypeRef v) {
    switch (AXValueGetType((AXValueRef)v)) {
    case kAXValueCGPointType: return VALUE_POINT;
    case kAXValueCGSizeType:  return VALUE_SIZE;
    case kAXValueCGRectType:  return VALUE_RECT;
    case kAXValueCFRangeType: return VALUE_RANGE;
    default:                  return VALUE_OTHER;
    }
}

static void ax_value_point(CFTypeRef v, double *x, double *y) {
    CGPoint p = CGPointZero;
    AXValueGetValue((AXValueRef)v, kAXValueCGPointType, &p);
    *x = p.x; *y = p.y;
}

static void ax_value_size(CFTypeRef v, double *w, double *h) {
    CGSize s = CGSizeZero;
    AXValueGetValue((AXValueRef)v, kAXValueCGSizeType, &s);
    *w = s.width; *h = s.height;
}

static void ax_value_rect(CFTypeRef v, double *x, double *y, double *w, double *h) {
    CGRect r = CGRectZero;
    AXValueGetValue((AXValueRef)v, kAXValueCGRectType, &r);
    *x = r.origin.x; *y = r.origin.y; *w = r.size.width; *h = r.size.height;
}

static void ax_value_range(CFTypeRef v, long *loc, long *len) {
    CFRange r = CFRangeMake(0, 0);
    AXValueGetValue((AXValueRef)v, kAXValueCFRangeType, &r);
    *loc = r.location; *len = r.length;
}

static long cf_array_count(CFTypeRef a) {
    return (long)CFArrayGetCount((CFArrayRef)a);
}

// Returns a retained array item.
static CFTypeRef cf_array_get(CFTypeRef a, long i) {
    CFTypeRef v = CFArrayGetValueAtIndex((CFArrayRef)a, (CFIndex)i);
    if (v) CFRetain(v);
    return v;
}

static unsigned long cf_hash(CFTypeRef v) {
    return (unsigned long)CFHash(v);
}

static int cf_equal(CFTypeRef a, CFTypeRef b) {
    return CFEqual(a, b) ? 1 : 0;
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/mj1618/axtree/internal/platform"
)

// element is a retained AXUIElementRef. The reference is released when the
// element is garbage collected.
type element struct {
	ref C.CFTypeRef
}

// newElement takes ownership of one retain count on ref.
func newElement(ref C.CFTypeRef) *element {
	el := &element{ref: ref}
	runtime.SetFinalizer(el, func(e *element) {
		C.CFRelease(e.ref)
	})
	return el
}

func asElement(el platform.Element) (*element, bool) {
	e, ok := el.(*element)
	return e, ok && e != nil && e.ref != 0
}

// Accessibility implements platform.Accessibility over AXUIElement.
type Accessibility struct{}

// NewAccessibility creates the macOS accessibility adapter.
func NewAccessibility() *Accessibility {
	return &Accessibility{}
}

func (a *Accessibility) Attribute(el platform.Element, name string) (any, bool) {
	e, ok := asElement(el)
	if !ok {
		return nil, false
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var v C.CFTypeRef
	rc := C.ax_copy_attr(e.ref, cName, &v)
	runtime.KeepAlive(e)
	if rc != 0 || v == 0 {
		return nil, false
	}
	return convert(v), true
}

func (a *Accessibility) Identity(el platform.Element) uintptr {
	e, ok := asElement(el)
	if !ok {
		return 0
	}
	id := uintptr(C.cf_hash(e.ref))
	runtime.KeepAlive(e)
	return id
}

func (a *Accessibility) Equal(x, y platform.Element) bool {
	ex, okX := asElement(x)
	ey, okY := asElement(y)
	if !okX || !okY {
		return false
	}
	eq := C.cf_equal(ex.ref, ey.ref) != 0
	runtime.KeepAlive(ex)
	runtime.KeepAlive(ey)
	return eq
}

// convert maps a CoreFoundation value to a Go value and takes ownership of
// v: elements keep it, everything else releases it.
func convert(v C.CFTypeRef) any {
	kind := C.cf_kind(v)
	if kind == C.KIND_ELEMENT {
		return newElement(v)
	}
	defer C.CFRelease(v)

	switch kind {
	case C.KIND_STRING:
		return goString(C.cf_string_utf8(v))
	case C.KIND_BOOL:
		return C.cf_bool(v) != 0
	case C.KIND_NUMBER:
		var f C.double
		var i C.longlong
		if C.cf_number(v, &f, &i) != 0 {
			return float64(f)
		}
		return int64(i)
	case C.KIND_AXVALUE:
		return convertAXValue(v)
	case C.KIND_ARRAY:
		n := int(C.cf_array_count(v))
		items := make([]any, 0, n)
		for i := 0; i < n; i++ {
			item := C.cf_array_get(v, C.long(i))
			if item == 0 {
				continue
			}
			items = append(items, convert(item))
		}
		return items
	default:
		return platform.Opaque{Description: goString(C.cf_describe(v))}
	}
}

func convertAXValue(v C.CFTypeRef) any {
	switch C.ax_value_type(v) {
	case C.VALUE_POINT:
		var x, y C.double
		C.ax_value_point(v, &x, &y)
		return platform.Point{X: float64(x), Y: float64(y)}
	case C.VALUE_SIZE:
		var w, h C.double
		C.ax_value_size(v, &w, &h)
		return platform.Size{Width: float64(w), Height: float64(h)}
	case C.VALUE_RECT:
		var x, y, w, h C.double
		C.ax_value_rect(v, &x, &y, &w, &h)
		return platform.Rect{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}
	case C.VALUE_RANGE:
		var loc, length C.long
		C.ax_value_range(v, &loc, &length)
		return platform.Range{Location: int(loc), Length: int(length)}
	default:
		return platform.Opaque{Description: goString(C.cf_describe(v))}
	}
}

// goString copies and frees a malloc'd C string.
func goString(p *C.char) string {
	if p == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}
