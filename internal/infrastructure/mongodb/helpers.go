package mongodb

import "go.mongodb.org/mongo-driver/bson/primitive"

// oid parses a hex document id. A malformed id can never match a stored
// document, so callers treat ok=false as "not found".
func oid(id string) (primitive.ObjectID, bool) {
	v, err := primitive.ObjectIDFromHex(id)
	return v, err == nil
}
