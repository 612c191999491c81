package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/olupoagric/storefront/internal/domain/models"
)

const (
	productsCollection = "products"
	calendarCollection = "farming_calendar"
)

// MongoDBRepository reads the catalog from MongoDB. It never writes.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		dbName: dbName,
	}, nil
}

type productDocument struct {
	ID          interface{} `bson:"_id"`
	Name        string      `bson:"name"`
	Category    string      `bson:"category"`
	Description string      `bson:"description"`
	Price       float64     `bson:"price"`
	Unit        string      `bson:"unit"`
	ImageURL    string      `bson:"image_url,omitempty"`
	InStock     bool        `bson:"in_stock"`
	CreatedAt   time.Time   `bson:"created_at"`
}

func (d productDocument) toModel() models.Product {
	return models.Product{
		ID:          documentID(d.ID),
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		Price:       decimal.NewFromFloat(d.Price),
		Unit:        d.Unit,
		ImageURL:    d.ImageURL,
		InStock:     d.InStock,
		CreatedAt:   d.CreatedAt,
	}
}

type calendarDocument struct {
	ID          interface{} `bson:"_id"`
	CropName    string      `bson:"crop_name"`
	Activity    string      `bson:"activity"`
	Month       int         `bson:"month"`
	Season      string      `bson:"season"`
	Description string      `bson:"description"`
}

func (d calendarDocument) toModel() models.CalendarEntry {
	return models.CalendarEntry{
		ID:          documentID(d.ID),
		CropName:    d.CropName,
		Activity:    d.Activity,
		Month:       d.Month,
		Season:      d.Season,
		Description: d.Description,
	}
}

// documentID accepts both ObjectID and string keys.
func documentID(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}

// ListInStockProducts returns the in-stock products ordered by category.
func (r *MongoDBRepository) ListInStockProducts(ctx context.Context) ([]models.Product, error) {
	collection := r.client.Database(r.dbName).Collection(productsCollection)
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}})

	cursor, err := collection.Find(ctx, bson.M{"in_stock": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toModel())
	}
	return products, nil
}

// ListCalendarEntries returns every calendar entry ordered by month then crop.
func (r *MongoDBRepository) ListCalendarEntries(ctx context.Context) ([]models.CalendarEntry, error) {
	collection := r.client.Database(r.dbName).Collection(calendarCollection)
	opts := options.Find().SetSort(bson.D{{Key: "month", Value: 1}, {Key: "crop_name", Value: 1}})

	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query farming calendar: %w", err)
	}

	var docs []calendarDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode farming calendar: %w", err)
	}

	entries := make([]models.CalendarEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, d.toModel())
	}
	return entries, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
