package review

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewPayload struct {
	Email         string    `json:"email" validate:"required,email"`
	ServiceId     string    `json:"serviceId" validate:"required"`
	ServiceName   string    `json:"serviceName"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerImage string    `json:"reviewerImage" validate:"omitempty,url"`
	Feedback      string    `json:"feedback" validate:"required"`
	Rating        float64   `json:"rating" validate:"required,gte=1,lte=5"`
	Date          time.Time `json:"date"`
}

type UpdateReviewPayload struct {
	Feedback string  `json:"feedback" bson:"feedback" validate:"required"`
	Rating   float64 `json:"rating" bson:"rating" validate:"required,gte=1,lte=5"`
}

type ReviewDocument struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
	ServiceId     string             `json:"serviceId,omitempty" bson:"serviceId,omitempty"`
	ServiceName   string             `json:"serviceName,omitempty" bson:"serviceName,omitempty"`
	ReviewerName  string             `json:"reviewerName,omitempty" bson:"reviewerName,omitempty"`
	ReviewerImage string             `json:"reviewerImage,omitempty" bson:"reviewerImage,omitempty"`
	Feedback      string             `json:"feedback" bson:"feedback"`
	Rating        float64            `json:"rating" bson:"rating"`
	Date          time.Time          `json:"date,omitempty" bson:"date,omitempty"`
}

func (p *ReviewPayload) ToDocument() *ReviewDocument {
	return &ReviewDocument{
		Email:         p.Email,
		ServiceId:     p.ServiceId,
		ServiceName:   p.ServiceName,
		ReviewerName:  p.ReviewerName,
		ReviewerImage: p.ReviewerImage,
		Feedback:      p.Feedback,
		Rating:        p.Rating,
		Date:          p.Date,
	}
}
