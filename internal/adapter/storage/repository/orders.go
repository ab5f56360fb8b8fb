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

var orderColumns = []string{
	"id", "order_number", "user_id", "total_amount", "shipping_fee",
	"discount_amount", "tax_amount", "refunded_amount", "currency", "status",
	"shipping_address", "shipping_phone", "created_at", "updated_at",
	"paid_at", "shipped_at", "delivered_at",
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var currency string
	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.UserID,
		&order.TotalAmount.Amount,
		&order.ShippingFee.Amount,
		&order.DiscountAmount.Amount,
		&order.TaxAmount.Amount,
		&order.RefundedAmount.Amount,
		&currency,
		&order.Status,
		&order.ShippingAddress,
		&order.ShippingPhone,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.PaidAt,
		&order.ShippedAt,
		&order.DeliveredAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	order.TotalAmount.Currency = currency
	order.ShippingFee.Currency = currency
	order.DiscountAmount.Currency = currency
	order.TaxAmount.Currency = currency
	order.RefundedAmount.Currency = currency
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Insert("orders").
			Columns(orderColumns...).
			Values(order.ID, order.OrderNumber, order.UserID,
				order.TotalAmount.Amount, order.ShippingFee.Amount,
				order.DiscountAmount.Amount, order.TaxAmount.Amount,
				order.RefundedAmount.Amount, order.TotalAmount.Currency,
				order.Status, order.ShippingAddress, order.ShippingPhone,
				order.CreatedAt, order.UpdatedAt,
				order.PaidAt, order.ShippedAt, order.DeliveredAt)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		for _, item := range order.Items {
			itemSt := r.db.QueryBuilder.Insert("order_items").
				Columns("id", "order_id", "product_ref", "quantity",
					"quantity_returned", "price_at_purchase", "refunded_amount").
				Values(item.ID, order.ID, item.ProductRef, item.Quantity,
					item.QuantityReturned, item.PriceAtPurchase.Amount,
					item.RefundedAmount.Amount)

			sql, args, err = itemSt.ToSql()
			if err != nil {
				return err
			}
			if _, err = tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (r *Repository) readOrderItems(ctx context.Context, q queryer,
	orderID uuid.UUID, currency string) ([]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "product_ref", "quantity",
			"quantity_returned", "price_at_purchase", "refunded_amount").
		From("order_items").
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductRef,
			&item.Quantity,
			&item.QuantityReturned,
			&item.PriceAtPurchase.Amount,
			&item.RefundedAmount.Amount,
		)
		if err != nil {
			return nil, err
		}
		item.PriceAtPurchase.Currency = currency
		item.RefundedAmount.Currency = currency
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	order.Items, err = r.readOrderItems(ctx, r.db, orderID, order.TotalAmount.Currency)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) listOrders(ctx context.Context, where any) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")
	if where != nil {
		statement = statement.Where(where)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range list {
		order.Items, err = r.readOrderItems(ctx, r.db, order.ID, order.TotalAmount.Currency)
		if err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"user_id": userID})
}

func (r *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return r.listOrders(ctx, nil)
}

// lockOrder reads the order row FOR UPDATE inside tx.
func (r *Repository) lockOrder(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}
	return scanOrder(tx.QueryRow(ctx, sql, args...))
}

func (r *Repository) saveOrder(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	statement := r.db.QueryBuilder.Update("orders").
		Set("refunded_amount", order.RefundedAmount.Amount).
		Set("status", order.Status).
		Set("updated_at", time.Now()).
		Set("paid_at", order.PaidAt).
		Set("shipped_at", order.ShippedAt).
		Set("delivered_at", order.DeliveredAt).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) UpdateOrder(ctx context.Context, orderID uuid.UUID, fn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		order, err = r.lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		order.Items, err = r.readOrderItems(ctx, tx, orderID, order.TotalAmount.Currency)
		if err != nil {
			return err
		}
		if err := fn(order); err != nil {
			return err
		}
		return r.saveOrder(ctx, tx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
