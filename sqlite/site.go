package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	rosh "github.com/Jasper-van-Tilborg/roshproject-sub001"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ rosh.SiteService = (*SiteService)(nil)

// SiteService implements rosh.SiteService using SQLite.
type SiteService struct {
	db *DB
}

// NewSiteService creates a new SiteService.
func NewSiteService(db *DB) *SiteService {
	return &SiteService{db: db}
}

// hashContent computes the xxHash of a site's text and returns it as hex.
func hashContent(site *rosh.Site) string {
	d := xxhash.New()
	_, _ = d.WriteString(site.HTML)
	_, _ = d.WriteString(site.CSS)
	_, _ = d.WriteString(site.JS)
	return hex.EncodeToString(d.Sum(nil))
}

const siteColumns = "id, name, html, css, js, content_hash, created_at, updated_at"

// Timestamps are stored as RFC3339 text, stamped to the second.
const timeLayout = time.RFC3339

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// CreateSite creates a new site. Names are unique.
func (s *SiteService) CreateSite(ctx context.Context, site *rosh.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM sites WHERE name = ?", site.Name).Scan(&exists); err != nil {
			return err
		}
		if exists > 0 {
			return rosh.Errorf(rosh.EINVALID, "site %q already exists", site.Name)
		}

		site.ID = uuid.New().String()
		site.ContentHash = hashContent(site)
		site.CreatedAt = now()
		site.UpdatedAt = site.CreatedAt

		_, err := tx.ExecContext(ctx, `
			INSERT INTO sites (`+siteColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, site.ID, site.Name, site.HTML, site.CSS, site.JS, site.ContentHash,
			site.CreatedAt.Format(timeLayout), site.UpdatedAt.Format(timeLayout))
		return err
	})
}

// FindSiteByID retrieves a site by ID.
func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*rosh.Site, error) {
	return findSiteByID(ctx, s.db.db, id)
}

func findSiteByID(ctx context.Context, q querier, id string) (*rosh.Site, error) {
	site, err := scanSite(q.QueryRowContext(ctx, "SELECT "+siteColumns+" FROM sites WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, rosh.Errorf(rosh.ENOTFOUND, "site not found")
	}
	if err != nil {
		return nil, err
	}
	return site, nil
}

// FindSites retrieves sites matching the filter, ordered by name.
func (s *SiteService) FindSites(ctx context.Context, filter rosh.SiteFilter) ([]*rosh.Site, error) {
	var where []string
	var args []any
	if filter.ID != nil {
		where = append(where, "id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		where = append(where, "name = ?")
		args = append(args, *filter.Name)
	}

	query := "SELECT " + siteColumns + " FROM sites"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name"

	// SQLite only accepts OFFSET after LIMIT; -1 means no limit.
	if filter.Limit > 0 || filter.Offset > 0 {
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, max(filter.Offset, 0))
	}

	rows, err := s.db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*rosh.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}

	return sites, rows.Err()
}

// UpdateSite updates an existing site and recomputes its content hash. The
// read and the write share one transaction.
func (s *SiteService) UpdateSite(ctx context.Context, id string, upd rosh.SiteUpdate) (*rosh.Site, error) {
	var site *rosh.Site
	err := s.db.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if site, err = findSiteByID(ctx, tx, id); err != nil {
			return err
		}

		if upd.Name != nil {
			site.Name = *upd.Name
		}
		if upd.HTML != nil {
			site.HTML = *upd.HTML
		}
		if upd.CSS != nil {
			site.CSS = *upd.CSS
		}
		if upd.JS != nil {
			site.JS = *upd.JS
		}
		if err := site.Validate(); err != nil {
			return err
		}

		site.ContentHash = hashContent(site)
		site.UpdatedAt = now()

		_, err = tx.ExecContext(ctx, `
			UPDATE sites
			SET name = ?, html = ?, css = ?, js = ?, content_hash = ?, updated_at = ?
			WHERE id = ?
		`, site.Name, site.HTML, site.CSS, site.JS, site.ContentHash,
			site.UpdatedAt.Format(timeLayout), id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return site, nil
}

// DeleteSite permanently removes a site.
func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	result, err := s.db.db.ExecContext(ctx, "DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return rosh.Errorf(rosh.ENOTFOUND, "site not found")
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSite(row scanner) (*rosh.Site, error) {
	var site rosh.Site
	var createdAt, updatedAt string

	if err := row.Scan(&site.ID, &site.Name, &site.HTML, &site.CSS, &site.JS, &site.ContentHash,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if site.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("site %s: bad created_at: %w", site.ID, err)
	}
	if site.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("site %s: bad updated_at: %w", site.ID, err)
	}
	return &site, nil
}
