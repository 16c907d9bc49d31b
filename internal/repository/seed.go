package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedLockKey is the advisory-lock key serializing the seed routine.
// Concurrent instances starting against an empty database would otherwise
// race the empty-check and double-insert the demo rows.
const seedLockKey = 7_441_200_801

// Seed inserts the default site configuration and demo content when the
// corresponding tables are empty. It runs before the HTTP listener starts
// and is idempotent: a non-empty table is left alone.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	// The advisory lock is session-scoped, so every statement must run on
	// the same connection.
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("seed: acquire conn: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, seedLockKey); err != nil {
		return fmt.Errorf("seed: lock: %w", err)
	}
	defer func() {
		_, _ = conn.Exec(ctx, `SELECT pg_advisory_unlock($1)`, seedLockKey)
	}()

	empty, err := tableEmpty(ctx, conn, "site_config")
	if err != nil {
		return err
	}
	if empty {
		if _, err := conn.Exec(ctx, `
			INSERT INTO site_config (
				id, company_name, tagline, email, phone, city, country,
				meta_title, meta_description, footer_text
			) VALUES (
				1, 'Vormwerk Studio', 'Ontwerp met karakter',
				'info@vormwerk.nl', '+31 20 123 4567', 'Amsterdam', 'Nederland',
				'Vormwerk Studio — grafisch ontwerp',
				'Grafisch ontwerpbureau voor huisstijlen, websites en campagnes.',
				'© Vormwerk Studio'
			)`); err != nil {
			return fmt.Errorf("seed: site_config: %w", err)
		}
		slog.Info("seeded default site config")
	}

	empty, err = tableEmpty(ctx, conn, "projects")
	if err != nil {
		return err
	}
	if empty {
		if _, err := conn.Exec(ctx, `
			INSERT INTO projects (title, description, category, status) VALUES
			('Huisstijl De Korenbloem', 'Complete huisstijl voor een ambachtelijke bakkerij.', 'branding', 'completed'),
			('Webshop Atelier Noord', 'Ontwerp en realisatie van een webshop voor keramiek.', 'webdesign', 'progress'),
			('Campagne Groen Wonen', 'Campagnebeeld voor een duurzaam wooninitiatief.', 'campagne', 'concept')`); err != nil {
			return fmt.Errorf("seed: projects: %w", err)
		}
		slog.Info("seeded demo projects")
	}

	empty, err = tableEmpty(ctx, conn, "products")
	if err != nil {
		return err
	}
	if empty {
		if _, err := conn.Exec(ctx, `
			INSERT INTO products (title, description, price, status) VALUES
			('Starterspakket', 'Logo, kleurenpalet en visitekaartjes.', '€ 495,-', 'active'),
			('Onderhoudsabonnement', 'Maandelijks onderhoud en kleine aanpassingen.', '€ 49,95 p/m', 'active'),
			('SEO-scan', 'Eenmalige analyse van vindbaarheid en metadata.', '€ 149,-', 'active')`); err != nil {
			return fmt.Errorf("seed: products: %w", err)
		}
		slog.Info("seeded demo products")
	}

	return nil
}

func tableEmpty(ctx context.Context, conn *pgxpool.Conn, table string) (bool, error) {
	var exists bool
	if err := conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM `+table+`)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("seed: check %s: %w", table, err)
	}
	return !exists, nil
}
