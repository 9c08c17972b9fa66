package services_test

import (
	"strings"
	"testing"
	"time"

	"renewrubber/internal/models"
	"renewrubber/internal/services"
	"renewrubber/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of events.Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func validForm() models.CheckoutForm {
	return models.CheckoutForm{
		Email:          "john@example.com",
		FirstName:      "John",
		LastName:       "Doe",
		Phone:          "+31 6 1234 5678",
		DeliveryMethod: models.DeliveryGymPickup,
		SelectedGym:    "Monk Bouldergym Amsterdam",
		PaymentMethod:  models.PaymentIDeal,
	}
}

func newCheckout(t *testing.T) (*services.CheckoutService, *services.CartService, *MockPublisher) {
	t.Helper()
	cart := services.NewCartService(storage.NewMemoryStore(), time.Millisecond)
	pub := new(MockPublisher)
	return services.NewCheckoutService(cart, pub, 0), cart, pub
}

func TestCheckoutService_ValidateAcceptsValidForm(t *testing.T) {
	checkout, _, _ := newCheckout(t)
	assert.Empty(t, checkout.Validate(validForm()))
}

func TestCheckoutService_ValidateContactFields(t *testing.T) {
	checkout, _, _ := newCheckout(t)

	form := validForm()
	form.Email = "not-an-email"
	form.FirstName = ""
	form.Phone = ""

	errs := checkout.Validate(form)
	assert.Equal(t, "Valid email is required", errs["email"])
	assert.Equal(t, "First name is required", errs["firstName"])
	assert.Equal(t, "Phone number is required", errs["phone"])
	assert.NotContains(t, errs, "lastName")
}

func TestCheckoutService_ValidateHomeDeliveryRequiresAddress(t *testing.T) {
	checkout, _, _ := newCheckout(t)

	form := validForm()
	form.DeliveryMethod = models.DeliveryHomeDelivery
	form.SelectedGym = ""
	form.Address = "Kalverstraat 1"
	form.City = "Amsterdam"
	form.PostalCode = ""

	// Exactly one error: the genuinely missing postal code.
	errs := checkout.Validate(form)
	assert.Len(t, errs, 1)
	assert.Equal(t, "Postal code is required", errs["postalCode"])
}

func TestCheckoutService_ValidateGymPickupRequiresGym(t *testing.T) {
	checkout, _, _ := newCheckout(t)

	form := validForm()
	form.SelectedGym = ""

	errs := checkout.Validate(form)
	assert.Equal(t, "Please select a gym", errs["selectedGym"])
	// Home-delivery fields are not required for gym pickup.
	assert.NotContains(t, errs, "address")
	assert.NotContains(t, errs, "postalCode")
}

func TestCheckoutService_ValidateCreditCardFields(t *testing.T) {
	checkout, _, _ := newCheckout(t)

	form := validForm()
	form.PaymentMethod = models.PaymentCreditCard

	// All card fields missing.
	errs := checkout.Validate(form)
	assert.Contains(t, errs, "cardNumber")
	assert.Contains(t, errs, "cardExpiry")
	assert.Contains(t, errs, "cardCvc")

	// Too few digits after stripping separators; CVC too short.
	form.CardNumber = "4111 1111 11"
	form.CardExpiry = "12/27"
	form.CardCvc = "12"
	errs = checkout.Validate(form)
	assert.Equal(t, "Valid card number is required", errs["cardNumber"])
	assert.Equal(t, "Valid CVC is required", errs["cardCvc"])
	assert.NotContains(t, errs, "cardExpiry")

	// Separators are stripped before counting digits.
	form.CardNumber = "4111-1111-1111-1111"
	form.CardCvc = "123"
	assert.Empty(t, checkout.Validate(form))

	// Other payment methods need no card fields.
	form = validForm()
	form.PaymentMethod = models.PaymentBancontact
	assert.Empty(t, checkout.Validate(form))
}

func TestCheckoutService_SubmitEmptyCartShortCircuits(t *testing.T) {
	checkout, _, pub := newCheckout(t)

	// Even an invalid form never reaches validation: the empty cart wins.
	_, err := checkout.Submit(models.CheckoutForm{})
	assert.ErrorIs(t, err, services.ErrCartEmpty)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCheckoutService_SubmitValidationFailureKeepsCart(t *testing.T) {
	checkout, cart, pub := newCheckout(t)
	cart.AddItem(testProduct("prod_01", 4500))

	form := validForm()
	form.Email = ""
	_, err := checkout.Submit(form)

	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")
	// Nothing was processed: the cart is untouched.
	assert.Equal(t, 1, cart.TotalItems())
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCheckoutService_SubmitGymPickup(t *testing.T) {
	checkout, cart, pub := newCheckout(t)
	cart.AddItem(testProduct("prod_01", 4500))
	cart.AddItem(testProduct("prod_02", 3500))
	cart.UpdateQuantity("prod_02", 3)

	pub.On("Publish", "order.created", mock.Anything).Return(nil).Once()

	confirmation, err := checkout.Submit(validForm())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(confirmation.OrderID, "ORD-"))
	assert.Equal(t, 15000, confirmation.Subtotal)
	assert.Equal(t, 0, confirmation.Shipping, "gym pickup ships free")
	assert.Equal(t, 15000, confirmation.Total)

	// Success clears the cart.
	assert.Empty(t, cart.Snapshot().Items)
	pub.AssertExpectations(t)
}

func TestCheckoutService_SubmitHomeDeliveryAddsShipping(t *testing.T) {
	checkout, cart, pub := newCheckout(t)
	cart.AddItem(testProduct("prod_01", 4500))

	pub.On("Publish", "order.created", mock.Anything).Return(nil).Once()

	form := validForm()
	form.DeliveryMethod = models.DeliveryHomeDelivery
	form.SelectedGym = ""
	form.Address = "Kalverstraat 1"
	form.City = "Amsterdam"
	form.PostalCode = "1012 NX"

	confirmation, err := checkout.Submit(form)
	assert.NoError(t, err)
	assert.Equal(t, 4500, confirmation.Subtotal)
	assert.Equal(t, services.ShippingCost, confirmation.Shipping)
	assert.Equal(t, 4500+services.ShippingCost, confirmation.Total)
	pub.AssertExpectations(t)
}

func TestCheckoutService_PublishFailureDoesNotFailCheckout(t *testing.T) {
	checkout, cart, pub := newCheckout(t)
	cart.AddItem(testProduct("prod_01", 4500))

	pub.On("Publish", "order.created", mock.Anything).Return(assert.AnError).Once()

	confirmation, err := checkout.Submit(validForm())
	assert.NoError(t, err, "the customer already paid; a broker hiccup must not fail the order")
	assert.NotNil(t, confirmation)
	pub.AssertExpectations(t)
}
