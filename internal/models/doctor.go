package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is stored as sent; fields beyond the named ones are kept in Extra.
type Doctor struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Name      string                 `bson:"name" json:"name"`
	Email     string                 `bson:"email" json:"email"`
	Specialty string                 `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Img       string                 `bson:"img,omitempty" json:"img,omitempty"`
	Extra     map[string]interface{} `bson:",inline" json:"-"`
}

func (d Doctor) MarshalJSON() ([]byte, error) {
	type plain Doctor
	return encodeWithExtra(plain(d), d.Extra)
}

func (d *Doctor) UnmarshalJSON(data []byte) error {
	type plain Doctor
	var p plain
	id, extra, err := decodeWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.ID, p.Extra = id, extra
	*d = Doctor(p)
	return nil
}
