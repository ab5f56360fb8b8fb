package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
)

var returnColumns = []string{
	"id", "return_number", "order_id", "user_id", "reason", "detailed_reason",
	"status", "requested_refund_amount", "approved_refund_amount", "currency",
	"rejection_reason", "created_at", "updated_at", "approved_at",
}

func scanReturn(row pgx.Row) (*domain.Return, error) {
	ret := domain.Return{}
	var currency string
	var approved *decimal.Decimal
	err := row.Scan(
		&ret.ID,
		&ret.ReturnNumber,
		&ret.OrderID,
		&ret.UserID,
		&ret.Reason,
		&ret.DetailedReason,
		&ret.Status,
		&ret.RequestedRefundAmount.Amount,
		&approved,
		&currency,
		&ret.RejectionReason,
		&ret.CreatedAt,
		&ret.UpdatedAt,
		&ret.ApprovedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	ret.RequestedRefundAmount.Currency = currency
	if approved != nil {
		amount := domain.NewMoney(*approved, currency)
		ret.ApprovedRefundAmount = &amount
	}
	return &ret, nil
}

func (r *Repository) CreateReturn(ctx context.Context, ret *domain.Return) (*domain.Return, error) {
	var approved *decimal.Decimal
	if ret.ApprovedRefundAmount != nil {
		approved = &ret.ApprovedRefundAmount.Amount
	}

	statement := r.db.QueryBuilder.Insert("returns").
		Columns(returnColumns...).
		Values(ret.ID, ret.ReturnNumber, ret.OrderID, ret.UserID,
			ret.Reason, ret.DetailedReason, ret.Status,
			ret.RequestedRefundAmount.Amount, approved,
			ret.RequestedRefundAmount.Currency, ret.RejectionReason,
			ret.CreatedAt, ret.UpdatedAt, ret.ApprovedAt)

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
	return ret, nil
}

func (r *Repository) ReadReturn(ctx context.Context, returnID uuid.UUID) (*domain.Return, error) {
	statement := r.db.QueryBuilder.
		Select(returnColumns...).
		From("returns").
		Where(sq.Eq{"id": returnID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}
	return scanReturn(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ListReturnsByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Return, error) {
	statement := r.db.QueryBuilder.
		Select(returnColumns...).
		From("returns").
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

	list := make([]*domain.Return, 0)
	for rows.Next() {
		ret, err := scanReturn(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, ret)
	}
	return list, rows.Err()
}

func (r *Repository) saveReturn(ctx context.Context, tx pgx.Tx, ret *domain.Return) error {
	var approved *decimal.Decimal
	if ret.ApprovedRefundAmount != nil {
		approved = &ret.ApprovedRefundAmount.Amount
	}

	statement := r.db.QueryBuilder.Update("returns").
		Set("status", ret.Status).
		Set("approved_refund_amount", approved).
		Set("rejection_reason", ret.RejectionReason).
		Set("updated_at", time.Now()).
		Set("approved_at", ret.ApprovedAt).
		Where(sq.Eq{"id": ret.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) UpdateReturn(ctx context.Context, returnID uuid.UUID, fn port.UpdateReturnFn) (*domain.Return, error) {
	var ret *domain.Return
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.
			Select(returnColumns...).
			From("returns").
			Where(sq.Eq{"id": returnID}).
			Suffix("FOR UPDATE")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		ret, err = scanReturn(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}
		if err := fn(ret); err != nil {
			return err
		}
		return r.saveReturn(ctx, tx, ret)
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

var refundColumns = []string{
	"id", "refund_number", "order_id", "user_id", "amount", "currency",
	"status", "reason", "provider_transaction_id", "created_at", "updated_at",
	"completed_at",
}

func scanRefund(row pgx.Row) (*domain.Refund, error) {
	refund := domain.Refund{}
	err := row.Scan(
		&refund.ID,
		&refund.RefundNumber,
		&refund.OrderID,
		&refund.UserID,
		&refund.Amount.Amount,
		&refund.Amount.Currency,
		&refund.Status,
		&refund.Reason,
		&refund.ProviderTransactionID,
		&refund.CreatedAt,
		&refund.UpdatedAt,
		&refund.CompletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &refund, nil
}

func (r *Repository) CreateRefund(ctx context.Context, refund *domain.Refund) (*domain.Refund, error) {
	statement := r.db.QueryBuilder.Insert("refunds").
		Columns(refundColumns...).
		Values(refund.ID, refund.RefundNumber, refund.OrderID, refund.UserID,
			refund.Amount.Amount, refund.Amount.Currency, refund.Status,
			refund.Reason, refund.ProviderTransactionID,
			refund.CreatedAt, refund.UpdatedAt, refund.CompletedAt)

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
	return refund, nil
}

func (r *Repository) ReadRefund(ctx context.Context, refundID uuid.UUID) (*domain.Refund, error) {
	statement := r.db.QueryBuilder.
		Select(refundColumns...).
		From("refunds").
		Where(sq.Eq{"id": refundID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}
	return scanRefund(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) lockRefund(ctx context.Context, tx pgx.Tx, refundID uuid.UUID) (*domain.Refund, error) {
	statement := r.db.QueryBuilder.
		Select(refundColumns...).
		From("refunds").
		Where(sq.Eq{"id": refundID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}
	return scanRefund(tx.QueryRow(ctx, sql, args...))
}

func (r *Repository) saveRefund(ctx context.Context, tx pgx.Tx, refund *domain.Refund) error {
	statement := r.db.QueryBuilder.Update("refunds").
		Set("status", refund.Status).
		Set("provider_transaction_id", refund.ProviderTransactionID).
		Set("updated_at", time.Now()).
		Set("completed_at", refund.CompletedAt).
		Where(sq.Eq{"id": refund.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) UpdateRefund(ctx context.Context, refundID uuid.UUID, fn port.UpdateRefundFn) (*domain.Refund, error) {
	var refund *domain.Refund
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		refund, err = r.lockRefund(ctx, tx, refundID)
		if err != nil {
			return err
		}
		if err := fn(refund); err != nil {
			return err
		}
		return r.saveRefund(ctx, tx, refund)
	})
	if err != nil {
		return nil, err
	}
	return refund, nil
}

// UpdateRefundByOrder locks the refund row and its order row in one
// transaction, so the refunded_amount accounting and the refund status flip
// commit together.
func (r *Repository) UpdateRefundByOrder(ctx context.Context, refundID uuid.UUID, fn port.UpdateRefundOrderFn) (*domain.Refund, error) {
	var refund *domain.Refund
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		refund, err = r.lockRefund(ctx, tx, refundID)
		if err != nil {
			return err
		}
		order, err := r.lockOrder(ctx, tx, refund.OrderID)
		if err != nil {
			return err
		}
		if err := fn(refund, order); err != nil {
			return err
		}
		if err := r.saveRefund(ctx, tx, refund); err != nil {
			return err
		}
		return r.saveOrder(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	return refund, nil
}
