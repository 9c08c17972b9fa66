package models

// Product represents a resoling or repair service offered in the catalog.
// The catalog is read-only fixture data; a Product never changes after load.
type Product struct {
	ID              string   `json:"id" yaml:"id" validate:"required"`
	Name            string   `json:"name" yaml:"name" validate:"required,min=3,max=100"`
	Description     string   `json:"description" yaml:"description" validate:"omitempty,max=500"`
	LongDescription string   `json:"longDescription,omitempty" yaml:"longDescription"`
	Price           int      `json:"price" yaml:"price" validate:"required,gt=0"` // euro cents
	Image           string   `json:"image" yaml:"image"`
	Category        string   `json:"category" yaml:"category" validate:"required"`
	RubberType      string   `json:"rubberType,omitempty" yaml:"rubberType"`
	Features        []string `json:"features,omitempty" yaml:"features"`
	InStock         bool     `json:"inStock" yaml:"inStock"`
}
