package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student represents a learner stored in the students collection.
type Student struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	StudentID string             `bson:"studentId"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Program   string             `bson:"program"`
}
