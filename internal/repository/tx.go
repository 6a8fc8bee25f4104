package repository

import "gorm.io/gorm"

// TxManager wraps gorm's transaction support behind TxManagerInterface
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Do runs fn inside a transaction, committing on nil and rolling back on error
func (m *TxManager) Do(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
