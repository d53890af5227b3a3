package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	_ "github.com/lib/pq"

	"github.com/printhaus/storefront-platform/internal/config"
)

type Repositories struct {
	DB      *sql.DB
	Product ProductRepository
	Cart    CartRepository
	Order   OrderRepository
	Banner  BannerRepository
}

func New(cfg *config.Config) (*Repositories, error) {
	// otelsql wraps the pq driver so every query carries a span.
	db, err := otelsql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:      db,
		Product: NewProductRepo(db),
		Cart:    NewCartRepo(db),
		Order:   NewOrderRepo(db),
		Banner:  NewBannerRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
