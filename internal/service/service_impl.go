package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	"product-catalog-service/config"
	"product-catalog-service/internal/domain"
	"product-catalog-service/internal/dto"
	"product-catalog-service/internal/repository"
)

// commentFanOutLimit bounds the concurrent comment lookups when listing
// products, so a large catalog does not flood the database with queries.
const commentFanOutLimit = 8

type CatalogServiceImpl struct {
	productRepo   repository.ProductRepository
	commentRepo   repository.CommentRepository
	config        config.Config
	kafkaProducer *kafka.Conn
	validate      *validator.Validate
}

func CreateCatalogService(productRepo repository.ProductRepository, commentRepo repository.CommentRepository, config config.Config, kafkaProducer *kafka.Conn) CatalogService {
	return &CatalogServiceImpl{
		productRepo:   productRepo,
		commentRepo:   commentRepo,
		config:        config,
		kafkaProducer: kafkaProducer,
		validate:      createValidator(),
	}
}

func (s *CatalogServiceImpl) GetProducts(ctx context.Context) (data []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return
	}

	// Fan out the comment lookups; each result lands at its product's index,
	// so the listing order survives whatever order the lookups finish in.
	data = make([]dto.ProductResponse, len(products))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(commentFanOutLimit)

	for i, product := range products {
		i, product := i, product
		g.Go(func() error {
			comments, err := s.commentRepo.GetCommentsByProductID(groupCtx, product.ID.Hex())
			if err != nil {
				return err
			}

			data[i] = dto.FromProduct(product, comments)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

func (s *CatalogServiceImpl) GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	comments, err := s.commentRepo.GetCommentsByProductID(ctx, id)
	if err != nil {
		return
	}

	return dto.FromProduct(product, comments), nil
}

func (s *CatalogServiceImpl) AddProduct(ctx context.Context, payload dto.ProductRequest) (data dto.ProductResponse, err error) {
	if err = s.validate.Struct(payload); err != nil {
		return data, translateValidationErrors(err)
	}

	stored, err := s.productRepo.AddProduct(ctx, domain.Product{
		Name:     payload.Name,
		ImageURL: payload.ImageURL,
		Count:    *payload.Count,
		Size:     domain.Size{Width: *payload.Size.Width, Height: *payload.Size.Height},
		Weight:   payload.Weight,
	})
	if err != nil {
		return
	}

	data = dto.FromProduct(stored, nil)

	s.publishEvent(ctx, "product_created", data)

	return data, nil
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, id string, payload dto.UpdateProductRequest) (data dto.ProductResponse, err error) {
	current, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	// Overlay the supplied fields on the stored record, then revalidate the
	// whole thing. A supplied size replaces the stored one wholesale, which is
	// what makes partial sizes fail validation instead of half-merging.
	merged := dto.ProductRequest{
		Name:     current.Name,
		ImageURL: current.ImageURL,
		Count:    &current.Count,
		Size:     &dto.SizeRequest{Width: &current.Size.Width, Height: &current.Size.Height},
		Weight:   current.Weight,
	}
	if payload.Name != nil {
		merged.Name = *payload.Name
	}
	if payload.ImageURL != nil {
		merged.ImageURL = *payload.ImageURL
	}
	if payload.Count != nil {
		merged.Count = payload.Count
	}
	if payload.Size != nil {
		merged.Size = payload.Size
	}
	if payload.Weight != nil {
		merged.Weight = *payload.Weight
	}

	if err = s.validate.Struct(merged); err != nil {
		return data, translateValidationErrors(err)
	}

	err = s.productRepo.UpdateProduct(ctx, domain.Product{
		ID:       current.ID,
		Name:     merged.Name,
		ImageURL: merged.ImageURL,
		Count:    *merged.Count,
		Size:     domain.Size{Width: *merged.Size.Width, Height: *merged.Size.Height},
		Weight:   merged.Weight,
	})
	if err != nil {
		return
	}

	updated, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	// Update never touches comments, but the response must still carry them.
	comments, err := s.commentRepo.GetCommentsByProductID(ctx, id)
	if err != nil {
		return
	}

	data = dto.FromProduct(updated, comments)

	s.publishEvent(ctx, "product_updated", data)

	return data, nil
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	if _, err = s.productRepo.GetProductByID(ctx, id); err != nil {
		return
	}

	if err = s.productRepo.DeleteProduct(ctx, id); err != nil {
		return
	}

	// Cascade: sweep the product's comments. There is no cross-document
	// transaction here, so a failed sweep leaves orphans; the product delete
	// already succeeded and its outcome stands.
	if sweepErr := s.commentRepo.DeleteCommentsByProductID(ctx, id); sweepErr != nil {
		log.Ctx(ctx).Error().Err(sweepErr).Str("component", "DeleteProduct").Msg("comment cascade failed, orphaned comments left behind")
	}

	s.publishEvent(ctx, "product_deleted", id)

	return nil
}

func (s *CatalogServiceImpl) GetCommentsByProduct(ctx context.Context, productID string) (data []dto.CommentResponse, err error) {
	comments, err := s.commentRepo.GetCommentsByProductID(ctx, productID)
	if err != nil {
		return
	}

	return dto.FromComments(comments), nil
}

func (s *CatalogServiceImpl) AddComment(ctx context.Context, payload dto.CommentRequest) (data dto.CommentResponse, err error) {
	if err = s.validate.Struct(payload); err != nil {
		return data, translateValidationErrors(err)
	}

	// The referenced product must exist before anything is written. This is
	// the one cross-entity check enforced synchronously.
	product, err := s.productRepo.GetProductByID(ctx, payload.ProductID)
	if err != nil {
		return
	}

	stored, err := s.commentRepo.AddComment(ctx, domain.Comment{
		ProductID:   product.ID,
		Description: payload.Description,
		Date:        payload.Date,
	})
	if err != nil {
		return
	}

	data = dto.FromComment(stored)

	s.publishEvent(ctx, "comment_created", data)

	return data, nil
}

func (s *CatalogServiceImpl) DeleteComment(ctx context.Context, id string) (err error) {
	if _, err = s.commentRepo.GetCommentByID(ctx, id); err != nil {
		return
	}

	if err = s.commentRepo.DeleteComment(ctx, id); err != nil {
		return
	}

	s.publishEvent(ctx, "comment_deleted", id)

	return nil
}

// publishEvent emits a catalog change event, best effort: failures are logged
// and never fail the request that triggered them.
func (s *CatalogServiceImpl) publishEvent(ctx context.Context, eventType string, payload interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.CatalogEvent{
		EventType: eventType,
		Data:      payload,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.writeKafkaMessage(jsonMsg)
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1)) // Exponential backoff
	}

	log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msgf("failed to write Kafka message after %d attempts", maxRetries)
}

func (s *CatalogServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}
