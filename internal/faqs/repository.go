package faqs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Insert(ctx context.Context, item FAQ) error
	GetByID(ctx context.Context, id string) (FAQ, error)
	ListPublic(ctx context.Context, category string) ([]FAQ, error)
	ListAdmin(ctx context.Context, limit, offset int64) ([]FAQ, error)
	CountAdmin(ctx context.Context) (int64, error)
	Replace(ctx context.Context, id string, item FAQ) error
	Delete(ctx context.Context, id string) error
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, item FAQ) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (FAQ, error) {
	var item FAQ
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	return item, err
}

func (r *MongoRepository) ListPublic(ctx context.Context, category string) ([]FAQ, error) {
	filter := bson.M{"published": true}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "created_at", Value: -1}})
	return r.list(ctx, filter, opts)
}

func (r *MongoRepository) ListAdmin(ctx context.Context, limit, offset int64) ([]FAQ, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)
	return r.list(ctx, bson.M{}, opts)
}

func (r *MongoRepository) CountAdmin(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) Replace(ctx context.Context, id string, item FAQ) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]FAQ, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]FAQ, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
