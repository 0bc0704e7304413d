package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aqmarzaini/diecast-admin-service/internal/collection"
	"github.com/aqmarzaini/diecast-admin-service/internal/collection/dto"
	"github.com/aqmarzaini/diecast-admin-service/internal/model"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/logger"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/search"
	"github.com/aqmarzaini/diecast-admin-service/internal/pkg/text"
)

var ErrCollectionNotFound = errors.New("collection not found")

const collectionIndex = "collections"

type collectionUseCase struct {
	repo   collection.Repository
	es     *search.Client
	logger logger.ZapLogger
}

func NewCollectionUseCase(repo collection.Repository, es *search.Client, log logger.ZapLogger) collection.UseCase {
	return &collectionUseCase{
		repo:   repo,
		es:     es,
		logger: log,
	}
}

// ResolveOrCreate requires exact equality on all three match fields. A
// purchase for a known name under a different brand or scale yields a new
// collection row rather than silently reclassifying the existing one.
func (uc *collectionUseCase) ResolveOrCreate(ctx context.Context, input *dto.ResolveCollectionInput) (*model.Collection, error) {
	existing, err := uc.repo.FindByKey(ctx, input.Name, input.BrandID, input.Scale)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	c := &model.Collection{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		ItemNo:    input.ItemNo,
		BrandID:   input.BrandID,
		Scale:     sanitizeScale(input.Scale),
		Remark:    input.Remark,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("created collection",
		zap.String("collection_id", c.ID),
		zap.String("name", c.Name),
		zap.Int("brand_id", c.BrandID),
	)

	go uc.syncToElastic(context.Background(), c)

	return c, nil
}

func (uc *collectionUseCase) GetCollection(ctx context.Context, id string) (*model.Collection, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *collectionUseCase) ListCollections(ctx context.Context) ([]model.Collection, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *collectionUseCase) UpdateCollection(ctx context.Context, input *dto.UpdateCollectionInput) (*model.Collection, error) {
	c, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCollectionNotFound
	}

	c.Name = input.Name
	c.ItemNo = input.ItemNo
	c.BrandID = input.BrandID
	c.Scale = sanitizeScale(input.Scale)
	c.Remark = input.Remark
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	go uc.syncToElastic(context.Background(), c)

	return c, nil
}

func (uc *collectionUseCase) SearchCollections(ctx context.Context, q string, limit int) ([]model.Collection, error) {
	if limit <= 0 {
		limit = 20
	}

	if uc.es != nil {
		query := map[string]interface{}{
			"query": map[string]interface{}{
				"query_string": map[string]interface{}{
					"query":  fmt.Sprintf("*%s*", q),
					"fields": []string{"name^3", "item_no", "remark"},
				},
			},
			"size": limit,
		}

		res, err := uc.es.Search(ctx, collectionIndex, query)
		if err == nil {
			var collections []model.Collection
			for _, hit := range res.Hits.Hits {
				var c model.Collection
				if err := json.Unmarshal(hit.Source, &c); err == nil {
					collections = append(collections, c)
				}
			}
			return collections, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	return uc.repo.SearchByText(ctx, q, limit)
}

func (uc *collectionUseCase) syncToElastic(ctx context.Context, c *model.Collection) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"item_no": { "type": "keyword" },
				"brand_id": { "type": "integer" },
				"scale": { "type": "keyword" },
				"remark": { "type": "text" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, collectionIndex, mapping)

	if err := uc.es.Index(ctx, collectionIndex, c.ID, c); err != nil {
		uc.logger.Error("failed to index collection", zap.String("collection_id", c.ID), zap.Error(err))
	}
}

func sanitizeScale(scale *string) *string {
	return text.NilIfEmpty(text.Clean(scale))
}
