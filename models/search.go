package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

// EqualMatchBson creates BSON for equal search (Case-sensitive)
func EqualMatchBson(key string, value any) bson.D {
	return bson.D{{Key: key, Value: value}}
}

// AndMatchBson merges several single key filters into one implicit $and document.
func AndMatchBson(filters ...bson.D) bson.D {

	merged := bson.D{}
	for _, filter := range filters {
		merged = append(merged, filter...)
	}

	return merged
}

// SetBson creates a $set/$unset update. Keys with a nil value are unset.
func SetBson(fields bson.D) bson.D {

	set := bson.D{}
	unset := bson.D{}

	for _, field := range fields {

		if field.Value == nil {
			unset = append(unset, bson.E{Key: field.Key, Value: ""})
			continue
		}

		set = append(set, field)
	}

	update := bson.D{}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}

	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}

	return update
}
