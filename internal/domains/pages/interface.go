package pages

import "context"

// ServiceInterface - Cached page assembly, one view per route
type ServiceInterface interface {
	GetPage(ctx context.Context, name string) (*PageView, error)
	Names() []string
}
