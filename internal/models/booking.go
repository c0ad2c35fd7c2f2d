package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Booking struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	TreatmentID string                 `bson:"treatmentId,omitempty" json:"treatmentId,omitempty"`
	Treatment   string                 `bson:"treatment" json:"treatment" binding:"required"`
	Date        string                 `bson:"date" json:"date" binding:"required"`
	Slot        string                 `bson:"slot" json:"slot" binding:"required"`
	Patient     string                 `bson:"patient" json:"patient" binding:"required,email"` // patient email
	PatientName string                 `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone       string                 `bson:"phone,omitempty" json:"phone,omitempty"`
	Extra       map[string]interface{} `bson:",inline" json:"-"`
}

func (b Booking) MarshalJSON() ([]byte, error) {
	type plain Booking
	return encodeWithExtra(plain(b), b.Extra)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	type plain Booking
	var p plain
	id, extra, err := decodeWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.ID, p.Extra = id, extra
	*b = Booking(p)
	return nil
}
