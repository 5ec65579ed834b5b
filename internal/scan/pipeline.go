// Package scan implements the scan-to-card pipeline: capture in,
// metadata extraction, dedup lookup, dual image synthesis, persisted
// card out. Every step is a single attempt; the first failure ends the
// request.
package scan

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/AllanGabay/vitadex/internal/errors"
	"github.com/AllanGabay/vitadex/internal/imagegen"
	"github.com/AllanGabay/vitadex/internal/prompts"
	"github.com/AllanGabay/vitadex/pkg/models"
)

// Extractor is the metadata-extraction collaborator.
type Extractor interface {
	Extract(ctx context.Context, in models.ScanInput, lat, lng float64) (*models.Extraction, error)
}

// CardStore is the record-store collaborator.
type CardStore interface {
	Get(ctx context.Context, id string) (*models.CardRecord, error)
	Upsert(ctx context.Context, rec *models.CardRecord) error
}

type Pipeline struct {
	Extractor Extractor
	Images    imagegen.Generator
	Cards     CardStore
	Now       func() time.Time
}

func NewPipeline(extractor Extractor, images imagegen.Generator, cards CardStore) *Pipeline {
	return &Pipeline{
		Extractor: extractor,
		Images:    images,
		Cards:     cards,
		Now:       time.Now,
	}
}

// Run executes one scan. It returns the card record and whether it was
// served from the store (dedup hit). The dedup check runs after
// extraction (the key depends on extracted fields) and before any
// image generation, which is the billable work it guards. Concurrent
// misses on the same key are allowed to race; the upsert merge makes
// the second write harmless.
func (p *Pipeline) Run(ctx context.Context, in models.ScanInput, lat, lng float64, ownerID string) (*models.CardRecord, bool, error) {
	ext, err := p.Extractor.Extract(ctx, in, lat, lng)
	if err != nil {
		return nil, false, err
	}
	meta := ext.Metadata

	id := CardID(meta.CommonName, meta.Continent)
	existing, err := p.Cards.Get(ctx, id)
	if err != nil {
		return nil, false, apperrors.NewPersistenceFailed(err)
	}
	if existing != nil {
		return existing, true, nil
	}

	style := StyleForContinent(meta.Continent)
	var background, subject []byte

	// The two generation calls are independent; run them concurrently.
	// Either failure fails the whole scan, no lone image is kept.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var genErr error
		background, genErr = p.Images.Generate(gctx, prompts.Background(string(meta.Biome), style))
		return genErr
	})
	g.Go(func() error {
		var genErr error
		subject, genErr = p.Images.Generate(gctx, prompts.Subject(meta.CommonName, meta.ScientificName, style))
		return genErr
	})
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	rec := &models.CardRecord{
		ID:            id,
		OwnerID:       ownerID,
		Metadata:      meta,
		BackgroundPNG: background,
		SubjectPNG:    subject,
		HTMLCard:      ext.HTMLCard,
		CreatedAt:     p.Now().UTC(),
	}
	if err := p.Cards.Upsert(ctx, rec); err != nil {
		// No rollback: the generated payloads are discarded and the
		// next identical request starts over from extraction.
		return nil, false, apperrors.NewPersistenceFailed(err)
	}
	return rec, false, nil
}
