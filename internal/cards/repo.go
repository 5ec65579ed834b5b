package cards

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AllanGabay/vitadex/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Get returns the record under the derived id, or nil when absent.
func (r *Repo) Get(ctx context.Context, id string) (*models.CardRecord, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, owner_id, common_name, scientific_name, category, biome,
		       continent, traits, average_size, life_expectancy, description,
		       rarity, background_png, subject_png, html_card, created_at
		FROM cards
		WHERE id = ?
	`, id)

	var (
		rec        models.CardRecord
		traitsJSON string
		createdAt  time.Time
	)
	err := row.Scan(
		&rec.ID, &rec.OwnerID,
		&rec.Metadata.CommonName, &rec.Metadata.ScientificName,
		&rec.Metadata.Category, &rec.Metadata.Biome, &rec.Metadata.Continent,
		&traitsJSON, &rec.Metadata.AverageSize, &rec.Metadata.LifeExpectancy,
		&rec.Metadata.ProfessionalDescription, &rec.Metadata.Rarity,
		&rec.BackgroundPNG, &rec.SubjectPNG, &rec.HTMLCard, &createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan card: %w", err)
	}

	rec.CreatedAt = createdAt
	if err := json.Unmarshal([]byte(traitsJSON), &rec.Metadata.Traits); err != nil {
		return nil, fmt.Errorf("decode traits: %w", err)
	}
	return &rec, nil
}

// Upsert writes one record under its derived id. A concurrent writer
// that got there first is merged over field by field (last write wins);
// racing scans of the same species produce equivalent rows, so the
// merge is harmless.
func (r *Repo) Upsert(ctx context.Context, rec *models.CardRecord) error {
	traitsJSON, err := json.Marshal(rec.Metadata.Traits)
	if err != nil {
		return fmt.Errorf("encode traits: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO cards (
			id, owner_id, common_name, scientific_name, category, biome,
			continent, traits, average_size, life_expectancy, description,
			rarity, background_png, subject_png, html_card, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			common_name = excluded.common_name,
			scientific_name = excluded.scientific_name,
			category = excluded.category,
			biome = excluded.biome,
			continent = excluded.continent,
			traits = excluded.traits,
			average_size = excluded.average_size,
			life_expectancy = excluded.life_expectancy,
			description = excluded.description,
			rarity = excluded.rarity,
			background_png = excluded.background_png,
			subject_png = excluded.subject_png,
			html_card = excluded.html_card
	`,
		rec.ID, rec.OwnerID,
		rec.Metadata.CommonName, rec.Metadata.ScientificName,
		string(rec.Metadata.Category), string(rec.Metadata.Biome), rec.Metadata.Continent,
		string(traitsJSON), rec.Metadata.AverageSize, rec.Metadata.LifeExpectancy,
		rec.Metadata.ProfessionalDescription, string(rec.Metadata.Rarity),
		rec.BackgroundPNG, rec.SubjectPNG, rec.HTMLCard, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert card: %w", err)
	}
	return nil
}

// ListByOwner returns the caller's collection, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]models.CardSummary, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM cards WHERE owner_id = ?
	`, ownerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cards: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, common_name, continent, rarity, subject_png
		FROM cards
		WHERE owner_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, ownerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	out := make([]models.CardSummary, 0, limit)
	for rows.Next() {
		var s models.CardSummary
		if err := rows.Scan(&s.ID, &s.CommonName, &s.Continent, &s.Rarity, &s.SubjectPNG); err != nil {
			return nil, 0, fmt.Errorf("scan card row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows err: %w", err)
	}
	return out, total, nil
}
