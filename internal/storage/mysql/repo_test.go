package mysql_test

import (
	"context"
	"testing"

	mysqlrepo "hotel_pricing/internal/storage/mysql"
)

// an empty keep list is rejected before any statement reaches the database
func TestDeleteExcept_RefusesEmptyKeep(t *testing.T) {
	if _, err := mysqlrepo.New(nil).DeleteExcept(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty keep list")
	}
}
