package database

import (
	"database/sql"

	"gorm.io/gorm"
)

// TxRunner runs a function inside a database transaction. *gorm.DB satisfies
// it directly; tests substitute a runner that skips the real transaction.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
