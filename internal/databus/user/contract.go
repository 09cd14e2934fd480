//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import (
	"context"
)

type DBRepo interface {
	UpdateAuthorHandle(ctx context.Context, authorID, newHandle string) error
}
