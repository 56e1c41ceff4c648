package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariefcatur/janoer-storefront/internal/storefront"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the archive tables. Safe to run on every start.
// Order ids are unique per session only, so rows are keyed by both.
const Schema = `
CREATE TABLE IF NOT EXISTS orders (
	session_id     TEXT NOT NULL,
	id             TEXT NOT NULL,
	status         TEXT NOT NULL,
	payment_method TEXT NOT NULL,
	full_name      TEXT NOT NULL,
	email          TEXT NOT NULL,
	phone          TEXT NOT NULL,
	address        TEXT NOT NULL,
	city           TEXT NOT NULL,
	province       TEXT NOT NULL,
	postal_code    TEXT NOT NULL,
	subtotal       BIGINT NOT NULL,
	tax            BIGINT NOT NULL,
	shipping       BIGINT NOT NULL,
	total          BIGINT NOT NULL,
	order_date     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (session_id, id)
);
CREATE TABLE IF NOT EXISTS order_items (
	session_id TEXT NOT NULL,
	order_id   TEXT NOT NULL,
	line_no    INT NOT NULL,
	product_id INT NOT NULL,
	name       TEXT NOT NULL,
	size       TEXT NOT NULL,
	color      TEXT NOT NULL,
	qty        INT NOT NULL,
	price      BIGINT NOT NULL,
	PRIMARY KEY (session_id, order_id, line_no),
	FOREIGN KEY (session_id, order_id) REFERENCES orders(session_id, id) ON DELETE CASCADE
);`

var ErrNotFound = errors.New("order not found")

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SaveOrder inserts the order and its items in one transaction. It is
// idempotent on (session, order id): a replay reports existed=true and
// changes nothing.
func (r *Repo) SaveOrder(ctx context.Context, p OrderPlacedPayload) (existed bool, err error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	s := p.ShippingInfo
	ct, err := tx.Exec(ctx, `
		INSERT INTO orders(id, session_id, status, payment_method, full_name, email, phone,
		                   address, city, province, postal_code, subtotal, tax, shipping, total, order_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (session_id, id) DO NOTHING`,
		p.OrderID, p.SessionID, p.Status, p.PaymentMethod, s.FullName, s.Email, s.Phone,
		s.Address, s.City, s.Province, s.PostalCode, p.Subtotal, p.Tax, p.Shipping, p.Total, p.OrderDate,
	)
	if err != nil {
		return false, fmt.Errorf("insert order %s: %w", p.OrderID, err)
	}
	if ct.RowsAffected() == 0 {
		return true, nil
	}

	for i, it := range p.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items(session_id, order_id, line_no, product_id, name, size, color, qty, price)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			p.SessionID, p.OrderID, i+1, it.ProductID, it.Name, it.Size, it.Color, it.Qty, it.Price,
		); err != nil {
			return false, fmt.Errorf("insert order item %s/%d: %w", p.OrderID, i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return false, nil
}

// UpdateStatus moves the archived order along the status table. Setting the
// current status again is a no-op.
func (r *Repo) UpdateStatus(ctx context.Context, sessionID, orderID string, to storefront.OrderStatus) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cur string
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE session_id=$1 AND id=$2 FOR UPDATE`,
		sessionID, orderID).Scan(&cur)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, orderID)
	}
	if err != nil {
		return err
	}

	from := storefront.OrderStatus(cur)
	if from == to {
		return nil
	}
	if !storefront.CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", storefront.ErrInvalidTransition, from, to)
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET status=$3, updated_at=now() WHERE session_id=$1 AND id=$2`,
		sessionID, orderID, string(to)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *Repo) GetOrderStatus(ctx context.Context, sessionID, orderID string) (storefront.OrderStatus, error) {
	var s string
	err := r.DB.QueryRow(ctx, `SELECT status FROM orders WHERE session_id=$1 AND id=$2`, sessionID, orderID).Scan(&s)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return storefront.OrderStatus(s), nil
}
