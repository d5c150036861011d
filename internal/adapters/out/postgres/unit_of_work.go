// Package postgres provides PostgreSQL-based implementations of the persistence ports
// using GORM as the ORM layer. It implements the Unit of Work pattern to coordinate
// database transactions across multiple repository operations.
//
// A single business transaction typically touches both the orders table and the
// stage-event log: the aggregate's denormalized positions and the appended events
// must become visible atomically, and sequence-number allocation must happen on the
// same connection that inserts the event. The unit of work guarantees both by
// handing out repositories bound to one shared transaction.
//
// Concurrent transitions on the same order serialize on the order row: the
// transaction loads the row FOR UPDATE, so a second writer waits for the first
// to commit and then validates against the committed state. The unique index on
// (order_id, track, seq) remains as a backstop for any write path that reaches
// the event log without holding the row.
package postgres

import (
	"context"

	"laundry/internal/adapters/out/postgres/eventrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates GormUnitOfWork instances sharing a database
// connection pool. Each business transaction gets its own unit of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database connection.
//
// Example:
//
//	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state, ensuring proper isolation
// between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates database transactions for business operations.
// Repositories obtained from it while a transaction is active execute on that
// transaction; obtaining them before Begin executes on the main connection.
//
// Example usage:
//
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	if err := uow.StageEventRepository().Append(ctx, event); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return errs.NewPersistenceError("begin transaction", err)
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errs.NewPersistenceError("commit transaction", err)
	}
	return nil
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	if err != nil {
		return errs.NewPersistenceError("rollback transaction", err)
	}
	return nil
}

// OrderRepository provides access to order persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
//
// Loads performed through it lock the order row for the transaction, keeping
// concurrent transitions on the same order from interleaving.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db)
}

// StageEventRepository provides access to the stage-event log within the unit of work.
// Appends performed through it allocate sequence numbers on the active transaction,
// which is what makes concurrent appends to the same (order, track) log conflict
// instead of interleaving.
func (uow *GormUnitOfWork) StageEventRepository() ports.StageEventRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return eventrepo.NewGormStageEventRepository(db)
}
