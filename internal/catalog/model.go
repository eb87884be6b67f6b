package catalog

import "go.mongodb.org/mongo-driver/bson/primitive"

type ServicePayload struct {
	Title       string  `json:"title" validate:"required"`
	Image       string  `json:"img" validate:"omitempty,url"`
	Price       float64 `json:"price" validate:"gte=0"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Description string  `json:"description"`
}

type ServiceDocument struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Image       string             `json:"img,omitempty" bson:"img,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Rating      float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

func (p *ServicePayload) ToDocument() *ServiceDocument {
	return &ServiceDocument{
		Title:       p.Title,
		Image:       p.Image,
		Price:       p.Price,
		Rating:      p.Rating,
		Description: p.Description,
	}
}
