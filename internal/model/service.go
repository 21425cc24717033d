package model

// Service is a catalog entry. Catalog data is read-only in this API.
type Service struct {
	Base
	ServiceName string  `json:"serviceName" db:"service_name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Img         string  `json:"img" db:"img"`
}

// ServiceName is the projection returned by GET /serviceSpecialty.
type ServiceName struct {
	ServiceName string `json:"serviceName" db:"service_name"`
}
