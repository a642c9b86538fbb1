package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"product-catalog-service/internal/domain"
	"product-catalog-service/pkg/errs"
)

type MongoDBCommentRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBCommentRepository(db *mongo.Database) CommentRepository {
	return &MongoDBCommentRepositoryImpl{db: db}
}

func (r *MongoDBCommentRepositoryImpl) AddComment(ctx context.Context, data domain.Comment) (stored domain.Comment, err error) {
	result, err := r.db.Collection("comments").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddComment").Msg("")
		return
	}

	data.ID = result.InsertedID.(primitive.ObjectID)
	return data, nil
}

func (r *MongoDBCommentRepositoryImpl) GetCommentsByProductID(ctx context.Context, productID string) (data []domain.Comment, err error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCommentsByProductID").Msg("")
		return nil, errs.ErrInvalidID
	}

	filter := bson.D{{Key: "productId", Value: objectID}}

	cursor, err := r.db.Collection("comments").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCommentsByProductID").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCommentsByProductID").Msg("")
		return
	}

	if data == nil {
		data = []domain.Comment{}
	}

	return data, nil
}

func (r *MongoDBCommentRepositoryImpl) GetCommentByID(ctx context.Context, id string) (comment domain.Comment, err error) {
	commentID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCommentByID").Msg("")
		return comment, errs.ErrInvalidID
	}

	filter := bson.D{{Key: "_id", Value: commentID}}

	err = r.db.Collection("comments").FindOne(ctx, filter).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return comment, errs.ErrCommentNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetCommentByID").Msg("")
		return comment, err
	}
	return comment, nil
}

func (r *MongoDBCommentRepositoryImpl) DeleteComment(ctx context.Context, id string) (err error) {
	commentID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteComment").Msg("")
		return errs.ErrInvalidID
	}

	filter := bson.D{{Key: "_id", Value: commentID}}

	result, err := r.db.Collection("comments").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteComment").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrCommentNotFound
	}

	return
}

// DeleteCommentsByProductID is idempotent: matching nothing is still success.
// The cascade relies on that.
func (r *MongoDBCommentRepositoryImpl) DeleteCommentsByProductID(ctx context.Context, productID string) (err error) {
	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCommentsByProductID").Msg("")
		return errs.ErrInvalidID
	}

	filter := bson.D{{Key: "productId", Value: objectID}}

	_, err = r.db.Collection("comments").DeleteMany(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCommentsByProductID").Msg("")
		return
	}

	return
}
