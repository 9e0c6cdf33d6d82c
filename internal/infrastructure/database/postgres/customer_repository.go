package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"customer-management/internal/domain/customer"
	"customer-management/internal/infrastructure/monitoring"
	"customer-management/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of *pgxpool.Pool used by the repositories.
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

const uniqueViolation = "23505"

const customerColumns = `id, shop, customer_id, source, customer_type, demand, demand_description,
        customer_status, expected_order_date, expected_order_amount, creation_date, last_modified_date`

const (
	insertCustomerQuery = `
        INSERT INTO customer_management (shop, customer_id, source, customer_type, demand, demand_description,
            customer_status, expected_order_date, expected_order_amount, creation_date, last_modified_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id`

	selectByCustomerIDQuery = `SELECT ` + customerColumns + ` FROM customer_management WHERE customer_id = $1`

	selectPageQuery = `SELECT ` + customerColumns + ` FROM customer_management ORDER BY id ASC OFFSET $1 LIMIT $2`

	lockByCustomerIDQuery = selectByCustomerIDQuery + ` FOR UPDATE`

	lockByIDQuery = `SELECT ` + customerColumns + ` FROM customer_management WHERE id = $1 FOR UPDATE`

	updateCustomerQuery = `
        UPDATE customer_management
        SET shop = $1,
            source = $2,
            customer_type = $3,
            demand = $4,
            demand_description = $5,
            customer_status = $6,
            expected_order_date = $7,
            expected_order_amount = $8,
            last_modified_date = $9
        WHERE id = $10
        RETURNING ` + customerColumns

	deleteByCustomerIDQuery = `DELETE FROM customer_management WHERE customer_id = $1`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	r.logger.DebugContext(ctx, "Beginning transaction")
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin transaction", slog.Any("error", err))
		return nil, apperrors.WrapDatabaseError(err, "failed to begin transaction")
	}
	return tx, nil
}

func (r *CustomerRepository) CommitTx(ctx context.Context, tx pgx.Tx) error {
	r.logger.DebugContext(ctx, "Committing transaction")
	if err := tx.Commit(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit transaction", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}
	return nil
}

func (r *CustomerRepository) RollbackTx(ctx context.Context, tx pgx.Tx) error {
	r.logger.DebugContext(ctx, "Rolling back transaction")
	err := tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		r.logger.ErrorContext(ctx, "Failed to rollback transaction", slog.Any("error", err))
		return apperrors.WrapDatabaseError(err, "failed to rollback transaction")
	}
	return nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) (err error) {
	if c == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	defer observe("customer_create", time.Now(), &err)

	logCtx := r.logger.With(slog.String("customerID", c.CustomerID))
	logCtx.DebugContext(ctx, "Attempting to insert new customer")

	err = r.db.QueryRow(ctx, insertCustomerQuery,
		c.Shop,
		c.CustomerID,
		c.Source,
		c.CustomerType,
		c.Demand,
		c.DemandDescription,
		c.CustomerStatus,
		c.ExpectedOrderDate,
		c.ExpectedOrderAmount,
		c.CreationDate,
		c.LastModifiedDate,
	).Scan(&c.ID)
	if err != nil {
		err = translateDBError(err, logCtx)
		if errors.Is(err, customer.ErrDuplicateCustomerID) {
			logCtx.WarnContext(ctx, "Failed to insert customer due to unique constraint violation")
			return err
		}
		logCtx.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return err
	}

	logCtx.InfoContext(ctx, "Customer inserted successfully", slog.Int64("id", c.ID))
	return nil
}

func (r *CustomerRepository) FindByCustomerID(ctx context.Context, customerID string) (c *customer.Customer, err error) {
	defer observe("customer_find_by_customer_id", time.Now(), &err)

	c, err = scanCustomer(r.db.QueryRow(ctx, selectByCustomerIDQuery, customerID))
	if err != nil {
		err = translateDBError(err, r.logger)
		if !errors.Is(err, customer.ErrNotFound) {
			r.logger.ErrorContext(ctx, "Failed to query/scan customer", slog.String("customerID", customerID), slog.Any("error", err))
		}
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context, skip, limit int) (customers []*customer.Customer, err error) {
	defer observe("customer_find_all", time.Now(), &err)

	rows, err := r.db.Query(ctx, selectPageQuery, skip, limit)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, translateDBError(err, r.logger)
	}
	defer rows.Close()

	customers = make([]*customer.Customer, 0)
	for rows.Next() {
		c, scanErr := scanCustomer(rows)
		if scanErr != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", scanErr))
			return nil, apperrors.WrapDatabaseError(scanErr, "failed to scan customer row")
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, translateDBError(err, r.logger)
	}

	r.logger.DebugContext(ctx, "Finished finding customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, key customer.LookupKey, mutate customer.MutateFunc) (updated *customer.Customer, err error) {
	defer observe("customer_update", time.Now(), &err)
	logCtx := r.logger.With(slog.String("key", key.String()))

	tx, err := r.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	closed := false
	defer func() {
		if !closed {
			_ = r.RollbackTx(ctx, tx)
		}
	}()

	current, err := r.lock(ctx, tx, key)
	if err != nil {
		err = translateDBError(err, logCtx)
		if errors.Is(err, customer.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer to update not found")
		}
		return nil, err
	}

	if err = mutate(current); err != nil {
		logCtx.InfoContext(ctx, "Update rejected, rolling back", slog.Any("error", err))
		return nil, err
	}

	updated, err = scanCustomer(tx.QueryRow(ctx, updateCustomerQuery,
		current.Shop,
		current.Source,
		current.CustomerType,
		current.Demand,
		current.DemandDescription,
		current.CustomerStatus,
		current.ExpectedOrderDate,
		current.ExpectedOrderAmount,
		current.LastModifiedDate,
		current.ID,
	))
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to write customer update", slog.Any("error", err))
		return nil, translateDBError(err, logCtx)
	}

	closed = true
	if err = r.CommitTx(ctx, tx); err != nil {
		return nil, err
	}

	logCtx.InfoContext(ctx, "Customer updated successfully", slog.Int64("id", updated.ID))
	return updated, nil
}

func (r *CustomerRepository) lock(ctx context.Context, tx pgx.Tx, key customer.LookupKey) (*customer.Customer, error) {
	if key.IsByID() {
		return scanCustomer(tx.QueryRow(ctx, lockByIDQuery, key.ID))
	}
	return scanCustomer(tx.QueryRow(ctx, lockByCustomerIDQuery, key.CustomerID))
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID string) (err error) {
	defer observe("customer_delete", time.Now(), &err)
	logCtx := r.logger.With(slog.String("customerID", customerID))

	cmdTag, err := r.db.Exec(ctx, deleteByCustomerIDQuery, customerID)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to execute delete customer", slog.Any("error", err))
		return translateDBError(err, logCtx)
	}

	if cmdTag.RowsAffected() == 0 {
		logCtx.WarnContext(ctx, "Delete affected zero rows, customer not found")
		return customer.ErrNotFound
	}

	logCtx.InfoContext(ctx, "Customer deleted successfully")
	return nil
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(
		&c.ID,
		&c.Shop,
		&c.CustomerID,
		&c.Source,
		&c.CustomerType,
		&c.Demand,
		&c.DemandDescription,
		&c.CustomerStatus,
		&c.ExpectedOrderDate,
		&c.ExpectedOrderAmount,
		&c.CreationDate,
		&c.LastModifiedDate,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func observe(queryName string, start time.Time, err *error) {
	status := "success"
	if *err != nil && !errors.Is(*err, apperrors.ErrNotFound) && !errors.Is(*err, apperrors.ErrValidation) {
		status = "error"
	}
	monitoring.RecordDBQuery(queryName, status, time.Since(start))
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return customer.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w (%s)", customer.ErrDuplicateCustomerID, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return apperrors.WrapDatabaseError(err, "db error code "+pgErr.Code)
	}

	return apperrors.WrapDatabaseError(err, "database operation failed")
}
