package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Course is the catalogue entry stored in the courses collection. ID is the
// storage key and never leaves the service; CourseID is the public identifier.
type Course struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CourseID     string             `bson:"courseId"`
	CourseNumber string             `bson:"courseNumber"`
	CourseName   string             `bson:"courseName"`
	NumHours     int                `bson:"numHours"`
	NumCredits   float64            `bson:"numCredits"`
	Department   string             `bson:"department"`
}
