package models

// PaymentMethod tags one of the supported checkout methods.
type PaymentMethod string

const (
	MethodMpesa  PaymentMethod = "mpesa"
	MethodCard   PaymentMethod = "card"
	MethodPaypal PaymentMethod = "paypal"
	MethodCrypto PaymentMethod = "crypto"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodMpesa, MethodCard, MethodPaypal, MethodCrypto:
		return true
	}
	return false
}

// PaymentState is the per-session payment flow state. M-Pesa goes through
// AwaitingConfirmation between the push request and the PIN confirmation;
// every other method moves straight from AwaitingMethod to Succeeded.
type PaymentState string

const (
	PaymentIdle                 PaymentState = "idle"
	PaymentAwaitingMethod       PaymentState = "awaitingMethod"
	PaymentAwaitingConfirmation PaymentState = "awaitingConfirmation"
	PaymentProcessing           PaymentState = "processing"
	PaymentSucceeded            PaymentState = "succeeded"
)
