package models

// OrderStatus is a stage in the resoling workflow. The business process moves
// strictly forward: Received -> In Progress -> Ready for Pickup -> Completed.
// Orders in this application are read-only fixture data, so nothing here ever
// drives a transition; the ordering helpers exist for progress display and
// for whichever backend eventually owns the order lifecycle.
type OrderStatus string

const (
	StatusReceived       OrderStatus = "Received"
	StatusInProgress     OrderStatus = "In Progress"
	StatusReadyForPickup OrderStatus = "Ready for Pickup"
	StatusCompleted      OrderStatus = "Completed"
)

var statusProgression = []OrderStatus{
	StatusReceived,
	StatusInProgress,
	StatusReadyForPickup,
	StatusCompleted,
}

// Ordinal returns the zero-based position of the status in the workflow,
// or -1 for an unknown status.
func (s OrderStatus) Ordinal() int {
	for i, st := range statusProgression {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the known workflow stages.
func (s OrderStatus) Valid() bool {
	return s.Ordinal() >= 0
}

// CanTransitionTo reports whether moving to next would be a forward step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	cur, nxt := s.Ordinal(), next.Ordinal()
	return cur >= 0 && nxt >= 0 && nxt > cur
}

// OrderItem is a line item snapshot taken when the order was placed. It keeps
// the product name and price of that moment rather than a product reference.
type OrderItem struct {
	ID          string `json:"id" yaml:"id"`
	ProductName string `json:"productName" yaml:"productName"`
	Quantity    int    `json:"quantity" yaml:"quantity"`
	Price       int    `json:"price" yaml:"price"` // euro cents
	Image       string `json:"image,omitempty" yaml:"image"`
}

// TrackingStep is one entry in an order's tracking timeline.
type TrackingStep struct {
	Label     string `json:"label" yaml:"label"`
	Date      string `json:"date,omitempty" yaml:"date"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Order is a customer order. All orders are immutable fixture data in this
// application; there is no write path.
type Order struct {
	ID                  string         `json:"id" yaml:"id"`
	Date                string         `json:"date" yaml:"date"`
	Items               []OrderItem    `json:"items" yaml:"items"`
	Status              OrderStatus    `json:"status" yaml:"status"`
	Total               int            `json:"total" yaml:"total"` // euro cents
	PickupGym           string         `json:"pickupGym" yaml:"pickupGym"`
	EstimatedCompletion string         `json:"estimatedCompletion,omitempty" yaml:"estimatedCompletion"`
	TrackingTimeline    []TrackingStep `json:"trackingTimeline,omitempty" yaml:"trackingTimeline"`
}
