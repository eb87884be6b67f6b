package catalog

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	TestServiceTitle = "Bridal Makeup"
	TestServiceImage = "https://images.example.com/bridal.jpg"
)

var TestServiceId = primitive.NewObjectID()
