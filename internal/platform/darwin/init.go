//go:build darwin && cgo

package darwin

import "github.com/mj1618/axtree/internal/platform"

var (
	_ platform.Accessibility = (*Accessibility)(nil)
	_ platform.Host          = (*Host)(nil)
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Accessibility: NewAccessibility(),
			Host:          NewHost(),
		}, nil
	}
}
