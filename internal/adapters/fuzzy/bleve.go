package fuzzy

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/hearsayhub/hearsay-hub/internal/domain"
)

const quoteDocType = "quote"

// Bleve indexes the candidates of each request in memory and runs one
// boosted fuzzy match query per field. Bleve relevance grows with quality,
// so each hit is mapped to 1 - score/maxScore before the threshold applies.
type Bleve struct {
	fields    []field
	threshold float64
	mapping   mapping.IndexMapping
	logger    *slog.Logger
}

// NewBleve returns a Bleve engine over fields.
func NewBleve(fields []field, threshold float64, logger *slog.Logger) *Bleve {
	return &Bleve{
		fields:    fields,
		threshold: threshold,
		mapping:   quoteMapping(fields),
		logger:    logger,
	}
}

func quoteMapping(fields []field) mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	doc := bleve.NewDocumentMapping()

	for _, f := range fields {
		fm := bleve.NewTextFieldMapping()
		fm.Store = false
		fm.Index = true
		fm.IncludeTermVectors = true
		fm.Analyzer = standard.Name
		doc.AddFieldMappingsAt(f.name, fm)
	}

	im.AddDocumentMapping(quoteDocType, doc)
	im.DefaultType = quoteDocType

	return im
}

// Rank implements ports.Matcher.
func (b *Bleve) Rank(ctx context.Context, candidates []domain.Quote, text string) ([]domain.ScoredQuote, error) {
	if len(candidates) == 0 {
		return []domain.ScoredQuote{}, nil
	}

	idx, err := bleve.NewMemOnly(b.mapping)
	if err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}

	defer func() {
		if cerr := idx.Close(); cerr != nil {
			b.logger.WarnContext(ctx, "closing search index", slog.String("error", cerr.Error()))
		}
	}()

	batch := idx.NewBatch()

	for i := range candidates {
		doc := make(map[string]any, len(b.fields))
		for _, f := range b.fields {
			doc[f.name] = f.text(&candidates[i])
		}

		if err := batch.Index(strconv.Itoa(i), doc); err != nil {
			return nil, fmt.Errorf("indexing quote %d: %w", candidates[i].ID, err)
		}
	}

	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("indexing batch: %w", err)
	}

	req := bleve.NewSearchRequestOptions(b.query(text), len(candidates), 0, false)
	req.IncludeLocations = true

	res, err := idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	if res.MaxScore <= 0 {
		return []domain.ScoredQuote{}, nil
	}

	hits := make([]ranked, 0, len(res.Hits))

	for _, hit := range res.Hits {
		i, err := strconv.Atoi(hit.ID)
		if err != nil || i < 0 || i >= len(candidates) {
			continue
		}

		dist := 1 - hit.Score/res.MaxScore
		if dist > b.threshold {
			continue
		}

		var matched []string
		for _, f := range b.fields {
			if _, ok := hit.Locations[f.name]; ok {
				matched = append(matched, f.name)
			}
		}

		hits = append(hits, ranked{index: i, score: dist, matched: matched})
	}

	return collect(candidates, hits), nil
}

func (b *Bleve) query(text string) query.Query {
	fuzziness := 1
	if utf8.RuneCountInString(text) > 4 {
		fuzziness = 2
	}

	disjuncts := make([]query.Query, 0, len(b.fields))

	for _, f := range b.fields {
		if f.weight <= 0 {
			continue
		}

		mq := bleve.NewMatchQuery(text)
		mq.SetField(f.name)
		mq.SetFuzziness(fuzziness)
		mq.SetBoost(f.weight)
		disjuncts = append(disjuncts, mq)
	}

	return bleve.NewDisjunctionQuery(disjuncts...)
}
