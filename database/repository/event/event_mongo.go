package eventRepo

import (
	"context"
	"fmt"
	"time"

	"joino/database"
	"joino/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo() EventRepository {
	coll := database.MongoClient.Database("joino").Collection("events")
	repo := &MongoEventRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in feed queries.
func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FetchUpcoming returns active events dated today or later, date-ascending.
// The date comparison works lexicographically because dates are stored as
// "YYYY-MM-DD" strings.
func (r *MongoEventRepo) FetchUpcoming(ctx context.Context, today models.Date, search string) ([]models.Event, error) {
	filter := bson.M{
		"status": bson.M{"$nin": bson.A{models.EventStatusEnded, models.EventStatusCanceled}},
		"date":   bson.M{"$gte": today.String()},
	}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexQuote(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"location": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// GetByID retrieves an event by its unique ID, or nil when absent.
func (r *MongoEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &event, nil
}

// DistinctTags lists every tag present on non-ended events.
func (r *MongoEventRepo) DistinctTags(ctx context.Context) ([]string, error) {
	filter := bson.M{
		"status": bson.M{"$nin": bson.A{models.EventStatusEnded, models.EventStatusCanceled}},
	}
	values, err := r.coll.Distinct(ctx, "tags", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list distinct tags: %w", err)
	}

	tags := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			tags = append(tags, s)
		}
	}
	return tags, nil
}

// regexQuote escapes regex metacharacters so user search input is treated
// literally.
func regexQuote(s string) string {
	const meta = `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(meta); j++ {
			if s[i] == meta[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}
