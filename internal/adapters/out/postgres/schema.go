package postgres

import (
	"fmt"

	"forwarding/internal/adapters/out/postgres/customerrepo"
	"forwarding/internal/adapters/out/postgres/hostrepo"
	"forwarding/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the customers, hosts and orders tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&customerrepo.CustomerDTO{}, &hostrepo.HostDTO{}, &orderrepo.OrderDTO{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
