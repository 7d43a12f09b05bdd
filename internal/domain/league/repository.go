package league

import "context"

// Repository describes league catalog needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByCode(ctx context.Context, code Code) (League, bool, error)
}
