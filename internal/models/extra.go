package models

import (
	"encoding/json"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctors and bookings are stored as the client sent them. Fields the structs
// name are typed; everything else travels in an Extra map that is inlined
// both in BSON and in JSON.

// decodeWithExtra fills dst (a pointer to a struct) from the JSON object in
// data and returns the keys dst has no field for. "_id" is kept only when it
// is a hex object id; anything else is dropped so the store assigns one.
func decodeWithExtra(data []byte, dst interface{}) (primitive.ObjectID, map[string]interface{}, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return primitive.NilObjectID, nil, err
	}

	id := primitive.NilObjectID
	if idRaw, ok := raw["_id"]; ok {
		var hex string
		if json.Unmarshal(idRaw, &hex) == nil {
			if parsed, err := primitive.ObjectIDFromHex(hex); err == nil {
				id = parsed
			}
		}
		delete(raw, "_id")
	}

	fields := jsonFieldNames(reflect.TypeOf(dst).Elem())
	known := make(map[string]json.RawMessage, len(raw))
	var extra map[string]interface{}
	for k, v := range raw {
		if fields[k] {
			known[k] = v
			continue
		}
		var val interface{}
		if err := json.Unmarshal(v, &val); err != nil {
			return primitive.NilObjectID, nil, err
		}
		if extra == nil {
			extra = make(map[string]interface{})
		}
		extra[k] = val
	}

	b, err := json.Marshal(known)
	if err != nil {
		return primitive.NilObjectID, nil, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return primitive.NilObjectID, nil, err
	}
	return id, extra, nil
}

// encodeWithExtra marshals v and merges extra into the resulting object.
// Typed fields win over extra keys of the same name.
func encodeWithExtra(v interface{}, extra map[string]interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return b, err
	}
	var typed map[string]json.RawMessage
	if err := json.Unmarshal(b, &typed); err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(typed)+len(extra))
	for k, val := range extra {
		out[k] = val
	}
	for k, val := range typed {
		out[k] = val
	}
	return json.Marshal(out)
}

func jsonFieldNames(t reflect.Type) map[string]bool {
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		names[name] = true
	}
	return names
}
