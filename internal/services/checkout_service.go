package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"sync"
	"time"

	"renewrubber/internal/models"
	"renewrubber/pkg/events"

	"github.com/go-playground/validator/v10"
)

// ShippingCost is the fixed home-delivery surcharge in euro cents. Gym
// pickup ships free.
const ShippingCost = 595

// DefaultCheckoutDelay is the simulated payment-processing latency.
const DefaultCheckoutDelay = 1500 * time.Millisecond

// Checkout errors.
var (
	// ErrCartEmpty short-circuits checkout before any validation: the
	// caller should render the empty-cart view instead of the form.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrAlreadySubmitting rejects a resubmission while a submission is
	// in flight.
	ErrAlreadySubmitting = errors.New("checkout submission already in progress")
)

// ValidationError carries the field -> message map of a failed submit.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout validation failed for %d field(s)", len(e.Fields))
}

// checkoutMessages maps form fields to the inline messages shown next to
// the offending input.
var checkoutMessages = map[string]string{
	"email":       "Valid email is required",
	"firstName":   "First name is required",
	"lastName":    "Last name is required",
	"phone":       "Phone number is required",
	"selectedGym": "Please select a gym",
	"address":     "Street address is required",
	"city":        "City is required",
	"postalCode":  "Postal code is required",
	"cardNumber":  "Valid card number is required",
	"cardExpiry":  "Expiry date is required",
	"cardCvc":     "Valid CVC is required",
}

// CheckoutService validates and submits an order derived from the current
// cart and form input. State machine: editing -> submitting -> success, or
// back to editing with field errors.
type CheckoutService struct {
	cart      *CartService
	publisher events.Publisher
	validate  *validator.Validate
	delay     time.Duration

	mu         sync.Mutex
	submitting bool
}

// NewCheckoutService creates a checkout service. delay is the simulated
// payment-processing latency; pass 0 in tests.
func NewCheckoutService(cart *CartService, publisher events.Publisher, delay time.Duration) *CheckoutService {
	v := validator.New()
	// Report errors under the json field names the form uses.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CheckoutService{
		cart:      cart,
		publisher: publisher,
		validate:  v,
		delay:     delay,
	}
}

// Validate evaluates all field constraints atomically and returns a
// field -> message map; an empty map means the form is valid. Which fields
// are required depends on the selected delivery and payment methods.
func (s *CheckoutService) Validate(form models.CheckoutForm) map[string]string {
	fieldErrors := make(map[string]string)

	if err := s.validate.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, e := range validationErrors {
				msg, ok := checkoutMessages[e.Field()]
				if !ok {
					msg = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
				}
				fieldErrors[e.Field()] = msg
			}
		} else {
			fieldErrors["form"] = "Invalid form data"
		}
	}

	// Digit checks beyond what the struct tags express.
	if form.PaymentMethod == models.PaymentCreditCard {
		digits := strings.ReplaceAll(form.CardNumber, " ", "")
		digits = strings.ReplaceAll(digits, "-", "")
		if digits != "" && len(digits) < 16 {
			fieldErrors["cardNumber"] = checkoutMessages["cardNumber"]
		}
		if form.CardCvc != "" && len(form.CardCvc) < 3 {
			fieldErrors["cardCvc"] = checkoutMessages["cardCvc"]
		}
	}

	return fieldErrors
}

// Submit runs the full checkout pipeline: empty-cart short-circuit, atomic
// validation, simulated payment processing, cart clear, order id generation,
// and an order.created event. Returns the confirmation the success view
// renders. Only one submission may be in flight at a time.
func (s *CheckoutService) Submit(form models.CheckoutForm) (*models.OrderConfirmation, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrAlreadySubmitting
	}

	snap := s.cart.Snapshot()
	if len(snap.Items) == 0 {
		s.mu.Unlock()
		return nil, ErrCartEmpty
	}

	if fieldErrors := s.Validate(form); len(fieldErrors) > 0 {
		s.mu.Unlock()
		return nil, &ValidationError{Fields: fieldErrors}
	}

	s.submitting = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	// Simulated payment processing.
	time.Sleep(s.delay)

	subtotal := snap.TotalPrice
	shipping := 0
	if form.DeliveryMethod == models.DeliveryHomeDelivery {
		shipping = ShippingCost
	}

	if _, err := s.cart.Clear(); err != nil {
		return nil, fmt.Errorf("failed to clear cart after payment: %w", err)
	}

	confirmation := &models.OrderConfirmation{
		OrderID:  fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}

	s.publishOrderCreated(confirmation, form)
	return confirmation, nil
}

// publishOrderCreated emits the order.created event. A publish failure is
// logged but never fails a checkout the customer has already paid for.
func (s *CheckoutService) publishOrderCreated(confirmation *models.OrderConfirmation, form models.CheckoutForm) {
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{
		"orderId":        confirmation.OrderID,
		"email":          form.Email,
		"deliveryMethod": form.DeliveryMethod,
		"paymentMethod":  form.PaymentMethod,
		"total":          confirmation.Total,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal order event: %v", err)
		return
	}
	if err := s.publisher.Publish("order.created", body); err != nil {
		log.Printf("Warning: failed to publish order created event for %s: %v", confirmation.OrderID, err)
	}
}
