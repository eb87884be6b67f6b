package review

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	TestEmail         = "alice@example.com"
	TestOtherEmail    = "mallory@example.com"
	TestServiceId     = "6492f1d3a7b2c0e1f4d5a6b7"
	TestFeedback      = "friendly staff and a great result"
	TestJwtSecret     = "review-test-secret"
	TestReviewerImage = "https://images.example.com/alice.png"
)

var TestReviewId = primitive.NewObjectID()
