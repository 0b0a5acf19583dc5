package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Accessibility Accessibility
	Host          Host
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("axtree is not supported on %s/%s; supported: darwin/amd64, darwin/arm64 (cgo)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	p, err := NewProviderFunc()
	if err != nil {
		return nil, err
	}
	if p.Accessibility == nil || p.Host == nil {
		return nil, fmt.Errorf("incomplete platform provider for %s", runtime.GOOS)
	}
	return p, nil
}
