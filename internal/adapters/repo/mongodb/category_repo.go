package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrbebidas/distribuidora/internal/domain"
)

type CategoryRepo struct {
	col *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{col: db.Collection("categories")}
}

type categoryDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

// List returns the categories ordered by name for stable display.
func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []categoryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Category{ID: d.ID.Hex(), Name: d.Name})
	}
	return out, nil
}

func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// SeedBatch inserts the seed names with store-assigned ids in one batch.
func (r *CategoryRepo) SeedBatch(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	docs := make([]any, 0, len(names))
	for _, name := range names {
		docs = append(docs, categoryDoc{ID: primitive.NewObjectID(), Name: name})
	}
	_, err := r.col.InsertMany(ctx, docs)
	return wrapWrite(err, "categories", "create", names)
}

func (r *CategoryRepo) Create(ctx context.Context, name string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	doc := categoryDoc{ID: primitive.NewObjectID(), Name: name}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, wrapWrite(err, "categories", "create", name)
	}
	return &domain.Category{ID: doc.ID.Hex(), Name: doc.Name}, nil
}

func (r *CategoryRepo) Rename(ctx context.Context, id, name string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return wrapWrite(err, "categories/"+id, "update", name)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return wrapWrite(err, "categories/"+id, "delete", id)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
