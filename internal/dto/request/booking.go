package request

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card upi netbanking"`
}
