package helper

// Acknowledgment shapes echoed to clients after a write. They mirror the
// raw driver results the frontend already consumes.

type InsertAck struct {
	InsertedID string `json:"insertedId"`
}

type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}
