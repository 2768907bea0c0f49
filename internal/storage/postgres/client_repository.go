package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/commerce-api/internal/domain"
)

const (
	opTimeout = 5 * time.Second

	// Код PostgreSQL для нарушения уникального ограничения.
	pgUniqueViolation = "23505"
)

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository создаёт PostgreSQL-реализацию ClientRepository.
func NewClientRepository(store *Store) domain.ClientRepository {
	return &clientRepository{db: store.DB()}
}

const clientColumns = "id, name, email, phone, address, created_at"

func (r *clientRepository) List() ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate client rows: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) Get(id int64) (domain.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return r.get(ctx, id)
}

func (r *clientRepository) Create(client domain.Client) (domain.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO clients (name, email, phone, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, client.Name, client.Email, client.Phone, client.Address).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Client{}, domain.ErrConflict
		}
		return domain.Client{}, fmt.Errorf("insert client: %w", err)
	}

	return r.get(ctx, id)
}

func (r *clientRepository) Update(id int64, client domain.Client) (domain.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET name = $1, email = $2, phone = $3, address = $4
		WHERE id = $5
	`, client.Name, client.Email, client.Phone, client.Address, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Client{}, domain.ErrConflict
		}
		return domain.Client{}, fmt.Errorf("update client: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Client{}, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Client{}, domain.ErrNotFound
	}

	return r.get(ctx, id)
}

func (r *clientRepository) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *clientRepository) get(ctx context.Context, id int64) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE id = $1
	`, id)

	client, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Client{}, domain.ErrNotFound
		}
		return domain.Client{}, err
	}
	return client, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (domain.Client, error) {
	var client domain.Client
	if err := row.Scan(
		&client.ID, &client.Name, &client.Email,
		&client.Phone, &client.Address, &client.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Client{}, err
		}
		return domain.Client{}, fmt.Errorf("scan client row: %w", err)
	}
	return client, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

var _ domain.ClientRepository = (*clientRepository)(nil)
