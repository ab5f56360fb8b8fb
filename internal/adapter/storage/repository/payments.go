package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
)

var paymentColumns = []string{
	"id", "transaction_id", "order_id", "user_id", "amount", "currency",
	"method", "provider", "phone_number", "card_number_masked", "card_type",
	"status", "failure_reason", "provider_reference", "idempotency_key",
	"created_at", "updated_at", "completed_at", "expires_at",
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	payment := domain.Payment{}
	err := row.Scan(
		&payment.ID,
		&payment.TransactionID,
		&payment.OrderID,
		&payment.UserID,
		&payment.Amount.Amount,
		&payment.Amount.Currency,
		&payment.Method,
		&payment.Provider,
		&payment.PhoneNumber,
		&payment.CardNumberMasked,
		&payment.CardType,
		&payment.Status,
		&payment.FailureReason,
		&payment.ProviderReference,
		&payment.IdempotencyKey,
		&payment.CreatedAt,
		&payment.UpdatedAt,
		&payment.CompletedAt,
		&payment.ExpiresAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *Repository) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.Insert("payments").
		Columns(paymentColumns...).
		Values(payment.ID, payment.TransactionID, payment.OrderID,
			payment.UserID, payment.Amount.Amount, payment.Amount.Currency,
			payment.Method, payment.Provider, payment.PhoneNumber,
			payment.CardNumberMasked, payment.CardType, payment.Status,
			payment.FailureReason, payment.ProviderReference,
			payment.IdempotencyKey, payment.CreatedAt, payment.UpdatedAt,
			payment.CompletedAt, payment.ExpiresAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return payment, nil
}

func (r *Repository) readPaymentWhere(ctx context.Context, where sq.Eq) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns...).
		From("payments").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}
	return scanPayment(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadPayment(ctx context.Context, transactionID string) (*domain.Payment, error) {
	return r.readPaymentWhere(ctx, sq.Eq{"transaction_id": transactionID})
}

func (r *Repository) ReadPaymentByProviderRef(ctx context.Context, providerRef string) (*domain.Payment, error) {
	return r.readPaymentWhere(ctx, sq.Eq{"provider_reference": providerRef})
}

func (r *Repository) ReadPaymentByIdempotencyKey(ctx context.Context, key string) (*domain.Payment, error) {
	return r.readPaymentWhere(ctx, sq.Eq{"idempotency_key": key})
}

func (r *Repository) ListPaymentsByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, payment)
	}
	return list, rows.Err()
}

func (r *Repository) lockPayment(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"transaction_id": transactionID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}
	return scanPayment(tx.QueryRow(ctx, sql, args...))
}

func (r *Repository) savePayment(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error {
	statement := r.db.QueryBuilder.Update("payments").
		Set("status", payment.Status).
		Set("failure_reason", payment.FailureReason).
		Set("provider_reference", payment.ProviderReference).
		Set("updated_at", time.Now()).
		Set("completed_at", payment.CompletedAt).
		Where(sq.Eq{"transaction_id": payment.TransactionID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) UpdatePayment(ctx context.Context, transactionID string, fn port.UpdatePaymentFn) (*domain.Payment, error) {
	var payment *domain.Payment
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		payment, err = r.lockPayment(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		if err := fn(payment); err != nil {
			return err
		}
		return r.savePayment(ctx, tx, payment)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdatePaymentByOrder locks the payment row and its order row in one
// transaction. A settlement that marks the order paid either lands fully or
// not at all.
func (r *Repository) UpdatePaymentByOrder(ctx context.Context, transactionID string, fn port.UpdatePaymentOrderFn) (*domain.Payment, error) {
	var payment *domain.Payment
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		payment, err = r.lockPayment(ctx, tx, transactionID)
		if err != nil {
			return err
		}
		order, err := r.lockOrder(ctx, tx, payment.OrderID)
		if err != nil {
			return err
		}
		if err := fn(payment, order); err != nil {
			return err
		}
		if err := r.savePayment(ctx, tx, payment); err != nil {
			return err
		}
		return r.saveOrder(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}
