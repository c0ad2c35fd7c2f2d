package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offered by the clinic together with its daily slots.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
}

// ServiceSummary is the catalogue entry returned when slots are not wanted.
type ServiceSummary struct {
	ID   primitive.ObjectID `json:"_id"`
	Name string             `json:"name"`
}

func (s Service) Summary() ServiceSummary {
	return ServiceSummary{ID: s.ID, Name: s.Name}
}
