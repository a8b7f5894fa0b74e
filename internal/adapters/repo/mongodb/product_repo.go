package mongodb

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

type ProductRepo struct {
	col *mongo.Collection
}

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection("products")}
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var p domain.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// SeedBatch upserts the whole seed in a single bulk write keyed by the seed
// ids, so rerunning it can only overwrite the same documents, never insert
// duplicates.
func (r *ProductRepo) SeedBatch(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	models := make([]mongo.WriteModel, 0, len(products))
	for _, p := range products {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetReplacement(p).
			SetUpsert(true))
	}
	_, err := r.col.BulkWrite(ctx, models)
	return wrapWrite(err, "products", "create", len(products))
}

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p, options.Replace().SetUpsert(true))
	return wrapWrite(err, "products/"+p.ID, "create", p)
}

func (r *ProductRepo) Update(ctx context.Context, id string, upd domain.ProductUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return wrapWrite(err, "products/"+id, "update", upd)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return wrapWrite(err, "products/"+id, "delete", id)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Watch follows the collection change stream. Change streams need a replica
// set; against a standalone mongod the call fails and the repo degrades to a
// coarse poll ticker so the read model still converges.
func (r *ProductRepo) Watch(ctx context.Context) (<-chan struct{}, error) {
	events := make(chan struct{}, 1)

	stream, err := r.col.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		log.Warn().Err(err).Msg("change stream unavailable, polling instead")
		go func() {
			defer close(events)
			ticker := time.NewTicker(30 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					notify(events)
				}
			}
		}()
		return events, nil
	}

	go func() {
		defer close(events)
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			notify(events)
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.Warn().Err(err).Msg("change stream closed")
		}
	}()
	return events, nil
}

// notify never blocks: a pending event already forces a re-query.
func notify(events chan<- struct{}) {
	select {
	case events <- struct{}{}:
	default:
	}
}
