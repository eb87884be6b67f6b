package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// The result types mirror what the driver reports for single document writes
// and are returned to HTTP callers as is.

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedId   interface{} `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedId    interface{} `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func NewInsertResult(result *mongo.InsertOneResult) *InsertResult {
	return &InsertResult{
		Acknowledged: true,
		InsertedId:   result.InsertedID,
	}
}

func NewUpdateResult(result *mongo.UpdateResult) *UpdateResult {
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
		UpsertedId:    result.UpsertedID,
	}
}

func NewDeleteResult(result *mongo.DeleteResult) *DeleteResult {
	return &DeleteResult{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}
}
