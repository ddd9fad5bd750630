package sessiontest

import (
	"context"
	"testing"

	"github.com/iota-uz/org-directory/pkg/composables"
	"github.com/iota-uz/org-directory/pkg/session"
)

// ScopedContext opens a scope on a fake provider and closes it when the test ends.
func ScopedContext(t testing.TB) (context.Context, *session.Scope, *Provider) {
	t.Helper()
	provider := NewProvider()
	registry := session.NewRegistry(provider)
	scope := registry.Open()
	t.Cleanup(func() { registry.Close(scope) })
	return composables.WithScope(context.Background(), scope), scope, provider
}
