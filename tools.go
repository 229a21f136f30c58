//go:build tools

package tools

// mockery v2 (v2.53.x, see .mockery.yaml) is used as an installed binary
// (not via go run), so no import is needed. Run: mockery (from the module
// root) to regenerate pkg/fetch/mocks.
