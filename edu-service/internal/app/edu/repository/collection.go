package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aussieedu/pkg/logger"
	"aussieedu/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	serviceName  = "edu-service"
	indexTimeout = 10 * time.Second

	// Индекс с теми же ключами уже существует под другим именем или с другими опциями
	codeIndexOptionsConflict = 85
)

var (
	// Стандартные ошибки репозитория для обработки в service layer
	ErrNotFound        = errors.New("document not found")
	ErrDuplicateReview = errors.New("review for this consultation already exists")
)

// documentCollection - общая обвязка над коллекцией MongoDB для документов типа T
// Снимает метрики по каждой операции и приводит ErrNoDocuments к ErrNotFound
type documentCollection[T any] struct {
	coll *mongo.Collection
}

func newDocumentCollection[T any](db *mongo.Database, name string) *documentCollection[T] {
	return &documentCollection[T]{coll: db.Collection(name)}
}

// ensureIndexes создает вспомогательные индексы при старте
// Ошибку только логируем - без них запросы медленнее, но корректны
func (c *documentCollection[T]) ensureIndexes(models ...mongo.IndexModel) {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	for _, model := range models {
		if _, err := c.coll.Indexes().CreateOne(ctx, model); err != nil {
			logger.Warn().
				Err(err).
				Str("collection", c.coll.Name()).
				Msg("Failed to create index")
		}
	}
}

// ensureUniqueIndex создает уникальный индекс, на котором держится корректность данных
// Если такой же уникальный индекс уже есть под другим именем (например, созданный mongoose
// как userId_1_consultationId_1), это не ошибка. Любая другая ошибка возвращается
func (c *documentCollection[T]) ensureUniqueIndex(model mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	_, err := c.coll.Indexes().CreateOne(ctx, model)
	if err == nil {
		return nil
	}

	var se mongo.ServerError
	if errors.As(err, &se) && se.HasErrorCode(codeIndexOptionsConflict) {
		keys, ok := model.Keys.(bson.D)
		if !ok {
			return fmt.Errorf("failed to create unique index on %s: %w", c.coll.Name(), err)
		}
		found, listErr := c.hasUniqueIndex(ctx, keys)
		if listErr != nil {
			return fmt.Errorf("failed to list indexes on %s: %w", c.coll.Name(), listErr)
		}
		if found {
			logger.Info().
				Str("collection", c.coll.Name()).
				Msg("Equivalent unique index already exists")
			return nil
		}
	}

	return fmt.Errorf("failed to create unique index on %s: %w", c.coll.Name(), err)
}

// hasUniqueIndex ищет уникальный индекс с теми же ключами в том же порядке
func (c *documentCollection[T]) hasUniqueIndex(ctx context.Context, keys bson.D) (bool, error) {
	cursor, err := c.coll.Indexes().List(ctx)
	if err != nil {
		return false, err
	}
	defer cursor.Close(ctx)

	var specs []struct {
		Name   string `bson:"name"`
		Key    bson.D `bson:"key"`
		Unique bool   `bson:"unique"`
	}
	if err := cursor.All(ctx, &specs); err != nil {
		return false, err
	}

	for _, spec := range specs {
		if spec.Unique && sameIndexKeys(spec.Key, keys) {
			return true, nil
		}
	}
	return false, nil
}

// sameIndexKeys сравнивает ключи индексов
// Сервер может вернуть направление как int32, int64 или double
func sameIndexKeys(a, b bson.D) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			return false
		}
		av, aNum := indexDirection(a[i].Value)
		bv, bNum := indexDirection(b[i].Value)
		if aNum || bNum {
			if !aNum || !bNum || av != bv {
				return false
			}
			continue
		}
		// Специальные индексы: "text", "2dsphere", "hashed"
		as, aStr := a[i].Value.(string)
		bs, bStr := b[i].Value.(string)
		if !aStr || !bStr || as != bs {
			return false
		}
	}
	return true
}

func indexDirection(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func (c *documentCollection[T]) insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpInsert, c.coll.Name())
	defer timer.ObserveDuration()

	result, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpInsert, c.coll.Name())
		return primitive.NilObjectID, err
	}

	oid, _ := result.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func (c *documentCollection[T]) findByID(ctx context.Context, id string) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Невалидный ID не может существовать в коллекции
		return nil, ErrNotFound
	}

	timer := metrics.NewDbTimer(serviceName, metrics.DbOpFind, c.coll.Name())
	defer timer.ObserveDuration()

	var doc T
	if err := c.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		metrics.RecordDbError(serviceName, metrics.DbOpFind, c.coll.Name())
		return nil, fmt.Errorf("failed to get %s document: %w", c.coll.Name(), err)
	}

	return &doc, nil
}

func (c *documentCollection[T]) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpFind, c.coll.Name())
	defer timer.ObserveDuration()

	cursor, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpFind, c.coll.Name())
		return nil, fmt.Errorf("failed to find %s: %w", c.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.coll.Name(), err)
	}

	return docs, nil
}

func (c *documentCollection[T]) count(ctx context.Context, filter interface{}) (int64, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpCount, c.coll.Name())
	defer timer.ObserveDuration()

	total, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpCount, c.coll.Name())
		return 0, fmt.Errorf("failed to count %s: %w", c.coll.Name(), err)
	}

	return total, nil
}

// aggregate выполняет pipeline и декодирует все результаты в out
func (c *documentCollection[T]) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpAggregate, c.coll.Name())
	defer timer.ObserveDuration()

	cursor, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpAggregate, c.coll.Name())
		return fmt.Errorf("failed to aggregate %s: %w", c.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s aggregation: %w", c.coll.Name(), err)
	}

	return nil
}

// updateByID применяет update к документу и возвращает его состояние после изменения
func (c *documentCollection[T]) updateByID(ctx context.Context, id string, update bson.M) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	timer := metrics.NewDbTimer(serviceName, metrics.DbOpUpdate, c.coll.Name())
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err = c.coll.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		metrics.RecordDbError(serviceName, metrics.DbOpUpdate, c.coll.Name())
		return nil, fmt.Errorf("failed to update %s document: %w", c.coll.Name(), err)
	}

	return &doc, nil
}

// setByID - частичное обновление через $set
func (c *documentCollection[T]) setByID(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	return c.updateByID(ctx, id, bson.M{"$set": bson.M(fields)})
}

func (c *documentCollection[T]) deleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	timer := metrics.NewDbTimer(serviceName, metrics.DbOpDelete, c.coll.Name())
	defer timer.ObserveDuration()

	result, err := c.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpDelete, c.coll.Name())
		return fmt.Errorf("failed to delete %s document: %w", c.coll.Name(), err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
