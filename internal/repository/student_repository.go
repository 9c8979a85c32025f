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

// StudentsCollection is the MongoDB collection holding students.
const StudentsCollection = "students"

// StudentRepository manages persistence for student documents.
type StudentRepository struct {
	collection *mongo.Collection
	observer   QueryObserver
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(collection *mongo.Collection, observer QueryObserver) *StudentRepository {
	return &StudentRepository{collection: collection, observer: observer}
}

// EnsureIndexes creates the unique index on the public student identifier.
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "studentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create students index: %w", err)
	}
	return nil
}

// Count returns the collection's estimated document count.
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	defer observe(r.observer, "students_count", time.Now())
	n, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return n, nil
}

// Each walks every student with a server-side cursor, handing documents to fn
// as they are decoded. Iteration stops at the first error.
func (r *StudentRepository) Each(ctx context.Context, fn func(*models.Student) error) error {
	defer observe(r.observer, "students_find_all", time.Now())
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("find students: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var student models.Student
		if err := cursor.Decode(&student); err != nil {
			return fmt.Errorf("decode student: %w", err)
		}
		if err := fn(&student); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("iterate students: %w", err)
	}
	return nil
}

// FindByStudentID fetches a student by its public identifier.
func (r *StudentRepository) FindByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	defer observe(r.observer, "students_find_one", time.Now())
	var student models.Student
	if err := r.collection.FindOne(ctx, bson.M{"studentId": studentID}).Decode(&student); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find student %s: %w", studentID, err)
	}
	return &student, nil
}

// Insert stores a new student and records the generated storage key on it.
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) error {
	defer observe(r.observer, "students_insert", time.Now())
	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		student.ID = id
	}
	return nil
}

// Save replaces the document identified by student.ID.
func (r *StudentRepository) Save(ctx context.Context, student *models.Student) error {
	defer observe(r.observer, "students_replace", time.Now())
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": student.ID}, student)
	if err != nil {
		return fmt.Errorf("replace student %s: %w", student.StudentID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document identified by student.ID.
func (r *StudentRepository) Delete(ctx context.Context, student *models.Student) error {
	defer observe(r.observer, "students_delete", time.Now())
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": student.ID}); err != nil {
		return fmt.Errorf("delete student %s: %w", student.StudentID, err)
	}
	return nil
}
