//go:build darwin

package darwin

import "fmt"

// axError is an AXError status code returned by the accessibility API.
type axError int

var axErrorNames = map[axError]string{
	-25200: "kAXErrorFailure",
	-25201: "kAXErrorIllegalArgument",
	-25202: "kAXErrorInvalidUIElement",
	-25203: "kAXErrorInvalidUIElementObserver",
	-25204: "kAXErrorCannotComplete",
	-25205: "kAXErrorAttributeUnsupported",
	-25206: "kAXErrorActionUnsupported",
	-25207: "kAXErrorNotificationUnsupported",
	-25208: "kAXErrorNotImplemented",
	-25209: "kAXErrorNotificationAlreadyRegistered",
	-25210: "kAXErrorNotificationNotRegistered",
	-25211: "kAXErrorAPIDisabled",
	-25212: "kAXErrorNoValue",
	-25213: "kAXErrorParameterizedAttributeUnsupported",
	-25214: "kAXErrorNotEnoughPrecision",
}

func (e axError) Error() string {
	if name, ok := axErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("AXError(%d)", int(e))
}
