package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ServiceFields are the descriptive attributes replaced as a whole by an update.
type ServiceFields struct {
	ServiceName string  `bson:"serviceName" json:"serviceName"`
	ImageURL    string  `bson:"imageUrl" json:"imageUrl"`
	Price       float64 `bson:"price" json:"price"`
	ServiceArea string  `bson:"serviceArea" json:"serviceArea"`
	Description string  `bson:"description" json:"description"`
}

// Service is a listing in the services collection. Documents created by an
// upsert carry only ServiceFields, so the provider attributes are optional.
type Service struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProviderEmail string             `bson:"providerEmail,omitempty" json:"providerEmail,omitempty"`
	ProviderName  string             `bson:"providerName,omitempty" json:"providerName,omitempty"`
	ProviderImage string             `bson:"providerImage,omitempty" json:"providerImage,omitempty"`
	ServiceFields `bson:",inline"`
}

type ServiceFieldsRequest struct {
	ServiceName string   `json:"serviceName" binding:"required"`
	ImageURL    string   `json:"imageUrl" binding:"omitempty,url"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	ServiceArea string   `json:"serviceArea"`
	Description string   `json:"description"`
}

func (r ServiceFieldsRequest) Fields() ServiceFields {
	fields := ServiceFields{
		ServiceName: r.ServiceName,
		ImageURL:    r.ImageURL,
		ServiceArea: r.ServiceArea,
		Description: r.Description,
	}
	if r.Price != nil {
		fields.Price = *r.Price
	}
	return fields
}

type CreateServiceRequest struct {
	ServiceFieldsRequest
	ProviderEmail string `json:"providerEmail" binding:"required,email"`
	ProviderName  string `json:"providerName"`
	ProviderImage string `json:"providerImage" binding:"omitempty,url"`
}

func (r CreateServiceRequest) Service() Service {
	return Service{
		ProviderEmail: r.ProviderEmail,
		ProviderName:  r.ProviderName,
		ProviderImage: r.ProviderImage,
		ServiceFields: r.Fields(),
	}
}
