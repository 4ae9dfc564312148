package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	BlogPosts          *mongo.Collection
	Services           *mongo.Collection
	Testimonials       *mongo.Collection
	FAQs               *mongo.Collection
	Locations          *mongo.Collection
	ContactSubmissions *mongo.Collection
	Users              *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		BlogPosts:          db.Collection("blog_posts"),
		Services:           db.Collection("services"),
		Testimonials:       db.Collection("testimonials"),
		FAQs:               db.Collection("faqs"),
		Locations:          db.Collection("locations"),
		ContactSubmissions: db.Collection("contact_submissions"),
		Users:              db.Collection("users"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	uniqueSlug := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	for _, col := range []*mongo.Collection{cols.BlogPosts, cols.Services, cols.Locations} {
		if _, err := col.Indexes().CreateMany(indexTimeout, uniqueSlug); err != nil {
			return err
		}
	}

	_, err := cols.BlogPosts.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "published", Value: 1}, {Key: "published_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.ContactSubmissions.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Users.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	return nil
}
