package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// BookedService is a customer's booking. Service attributes are copied at
// booking time and never refreshed from the services collection.
type BookedService struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ServiceID          string             `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	ServiceName        string             `bson:"serviceName" json:"serviceName"`
	ImageURL           string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Price              float64            `bson:"price" json:"price"`
	ServiceArea        string             `bson:"serviceArea,omitempty" json:"serviceArea,omitempty"`
	ProviderEmail      string             `bson:"providerEmail" json:"providerEmail"`
	ProviderName       string             `bson:"providerName,omitempty" json:"providerName,omitempty"`
	UserEmail          string             `bson:"userEmail" json:"userEmail"`
	UserName           string             `bson:"userName,omitempty" json:"userName,omitempty"`
	ServiceTakingDate  string             `bson:"serviceTakingDate,omitempty" json:"serviceTakingDate,omitempty"`
	SpecialInstruction string             `bson:"specialInstruction,omitempty" json:"specialInstruction,omitempty"`
	ServiceStatus      string             `bson:"serviceStatus,omitempty" json:"serviceStatus,omitempty"`
}

type BookServiceRequest struct {
	ServiceID          string   `json:"serviceId"`
	ServiceName        string   `json:"serviceName" binding:"required"`
	ImageURL           string   `json:"imageUrl" binding:"omitempty,url"`
	Price              *float64 `json:"price" binding:"omitempty,gte=0"`
	ServiceArea        string   `json:"serviceArea"`
	ProviderEmail      string   `json:"providerEmail" binding:"required,email"`
	ProviderName       string   `json:"providerName"`
	UserEmail          string   `json:"userEmail" binding:"required,email"`
	UserName           string   `json:"userName"`
	ServiceTakingDate  string   `json:"serviceTakingDate"`
	SpecialInstruction string   `json:"specialInstruction"`
	ServiceStatus      string   `json:"serviceStatus"`
}

func (r BookServiceRequest) Booking() BookedService {
	booking := BookedService{
		ServiceID:          r.ServiceID,
		ServiceName:        r.ServiceName,
		ImageURL:           r.ImageURL,
		ServiceArea:        r.ServiceArea,
		ProviderEmail:      r.ProviderEmail,
		ProviderName:       r.ProviderName,
		UserEmail:          r.UserEmail,
		UserName:           r.UserName,
		ServiceTakingDate:  r.ServiceTakingDate,
		SpecialInstruction: r.SpecialInstruction,
		ServiceStatus:      r.ServiceStatus,
	}
	if r.Price != nil {
		booking.Price = *r.Price
	}
	return booking
}

type UpdateStatusRequest struct {
	UpdatedStatus string `json:"updatedStatus" binding:"required"`
}
