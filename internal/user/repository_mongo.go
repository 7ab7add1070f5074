package user

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wichananm65/user-account-backend/internal/store"
)

const collectionName = "User"

type MongoRepository struct {
	store *store.Store
}

func NewMongoRepository(st *store.Store) *MongoRepository {
	return &MongoRepository{store: st}
}

func (r *MongoRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	return r.store.Collection(ctx, collectionName)
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (User, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return User{}, err
	}

	var u User
	if err := coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return u, nil
}

func (r *MongoRepository) Find(ctx context.Context, filter Filter, skip, limit int64) ([]User, int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, 0, err
	}

	query := bson.M{}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.Name != "" {
		query["name"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(filter.Name) + "$",
			Options: "i",
		}
	}

	total, err := coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := coll.Find(ctx, query, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, 0, err
	}

	users := make([]User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *MongoRepository) Insert(ctx context.Context, user User) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	result, err := coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if result.InsertedID == nil {
		return ErrCreateFailed
	}

	return nil
}

func (r *MongoRepository) Replace(ctx context.Context, user User) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	result, err := coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount != 1 {
		return ErrDeleteFailed
	}

	return nil
}
