package store

import (
	"context"
	"fmt"

	"github.com/mtgtrade/market-services/internal/marketsvc/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

func (r *UserStore) CreateUser(ctx context.Context, user models.User) (int64, error) {
	var userId int64

	query := `
        INSERT INTO usuario (id_usuario, username, email, fecha_registro, tlf, pais, ciudad, calle)
        VALUES ($1, $2, $3, NOW(), $4, $5, $6, $7)
        RETURNING id_usuario;
    `

	err := r.db.QueryRow(ctx, query,
		user.UserID, user.Username, user.Email,
		user.Phone, user.Country, user.City, user.Street,
	).Scan(&userId)
	if err != nil {
		return 0, fmt.Errorf("could not create user: %w", err)
	}

	return userId, nil
}

func (r *UserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id_usuario, username, email, fecha_registro, tlf, pais, ciudad, calle
        FROM usuario
        ORDER BY fecha_registro DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		err := rows.Scan(
			&u.UserID,
			&u.Username,
			&u.Email,
			&u.FechaRegistro,
			&u.Phone,
			&u.Country,
			&u.City,
			&u.Street,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
