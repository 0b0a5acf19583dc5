// Package darwin implements the accessibility adapter on macOS using the
// AXUIElement API, NSWorkspace and CoreGraphics events.
// All functionality requires CGo (Objective-C frameworks).
// On other platforms, or without CGo, the package is empty and importing it
// registers nothing.
package darwin
