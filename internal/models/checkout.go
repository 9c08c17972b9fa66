package models

// Delivery methods.
const (
	DeliveryGymPickup    = "gym-pickup"
	DeliveryHomeDelivery = "home-delivery"
)

// Payment methods.
const (
	PaymentCreditCard = "credit-card"
	PaymentIDeal      = "ideal"
	PaymentBancontact = "bancontact"
)

// CheckoutForm is the transient checkout input. It is validated atomically on
// submit; which fields are required depends on the chosen delivery and
// payment methods. Card fields carry extra digit checks beyond the tags
// (see services.CheckoutService).
type CheckoutForm struct {
	Email          string `json:"email" validate:"required,email"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address" validate:"required_if=DeliveryMethod home-delivery"`
	City           string `json:"city" validate:"required_if=DeliveryMethod home-delivery"`
	PostalCode     string `json:"postalCode" validate:"required_if=DeliveryMethod home-delivery"`
	DeliveryMethod string `json:"deliveryMethod" validate:"required,oneof=gym-pickup home-delivery"`
	SelectedGym    string `json:"selectedGym" validate:"required_if=DeliveryMethod gym-pickup"`
	PaymentMethod  string `json:"paymentMethod" validate:"required,oneof=credit-card ideal bancontact"`
	CardNumber     string `json:"cardNumber" validate:"required_if=PaymentMethod credit-card"`
	CardExpiry     string `json:"cardExpiry" validate:"required_if=PaymentMethod credit-card"`
	CardCvc        string `json:"cardCvc" validate:"required_if=PaymentMethod credit-card"`
	SameAsBilling  bool   `json:"sameAsBilling"`
}

// OrderConfirmation is returned after a successful checkout submission.
type OrderConfirmation struct {
	OrderID  string `json:"orderId"`
	Subtotal int    `json:"subtotal"` // euro cents
	Shipping int    `json:"shipping"` // euro cents
	Total    int    `json:"total"`    // euro cents
}

// ContactForm is the contact page submission.
type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
