package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/campus-services/internal/models"
)

// CoursesCollection is the MongoDB collection holding courses.
const CoursesCollection = "courses"

// CourseRepository manages persistence for course documents.
type CourseRepository struct {
	collection *mongo.Collection
	observer   QueryObserver
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(collection *mongo.Collection, observer QueryObserver) *CourseRepository {
	return &CourseRepository{collection: collection, observer: observer}
}

// EnsureIndexes creates the unique index on the public course identifier.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "courseId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create courses index: %w", err)
	}
	return nil
}

// Count returns the collection's estimated document count.
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	defer observe(r.observer, "courses_count", time.Now())
	n, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}

// Each walks every course with a server-side cursor, handing documents to fn
// as they are decoded. Iteration stops at the first error.
func (r *CourseRepository) Each(ctx context.Context, fn func(*models.Course) error) error {
	defer observe(r.observer, "courses_find_all", time.Now())
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("find courses: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var course models.Course
		if err := cursor.Decode(&course); err != nil {
			return fmt.Errorf("decode course: %w", err)
		}
		if err := fn(&course); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("iterate courses: %w", err)
	}
	return nil
}

// FindByCourseID fetches a course by its public identifier.
func (r *CourseRepository) FindByCourseID(ctx context.Context, courseID string) (*models.Course, error) {
	defer observe(r.observer, "courses_find_one", time.Now())
	var course models.Course
	if err := r.collection.FindOne(ctx, bson.M{"courseId": courseID}).Decode(&course); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find course %s: %w", courseID, err)
	}
	return &course, nil
}

// Insert stores a new course and records the generated storage key on it.
func (r *CourseRepository) Insert(ctx context.Context, course *models.Course) error {
	defer observe(r.observer, "courses_insert", time.Now())
	result, err := r.collection.InsertOne(ctx, course)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		course.ID = id
	}
	return nil
}

// Save replaces the document identified by course.ID.
func (r *CourseRepository) Save(ctx context.Context, course *models.Course) error {
	defer observe(r.observer, "courses_replace", time.Now())
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": course.ID}, course)
	if err != nil {
		return fmt.Errorf("replace course %s: %w", course.CourseID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document identified by course.ID.
func (r *CourseRepository) Delete(ctx context.Context, course *models.Course) error {
	defer observe(r.observer, "courses_delete", time.Now())
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": course.ID}); err != nil {
		return fmt.Errorf("delete course %s: %w", course.CourseID, err)
	}
	return nil
}
