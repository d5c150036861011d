package payment

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Method represents how a customer pays for an order.
// Cash is confirmed directly by staff with no proof; every other method
// requires a proof reference before confirmation.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodCash is paid in person and confirmed by staff without proof.
	MethodCash

	// MethodEWallet is paid through an e-wallet transfer; a screenshot
	// or receipt reference is required before confirmation.
	MethodEWallet

	// MethodBankTransfer is paid through a bank transfer; a receipt
	// reference is required before confirmation.
	MethodBankTransfer
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:      "Unknown",
		MethodCash:         "Cash",
		MethodEWallet:      "EWallet",
		MethodBankTransfer: "BankTransfer",
	}
}

func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodCash:         "Cash",
		MethodEWallet:      "EWallet",
		MethodBankTransfer: "BankTransfer",
	}
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the human-readable name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// IsCash reports whether the method is settled in person without proof.
func (m Method) IsCash() bool {
	return m == MethodCash
}

// MethodFromString parses a payment method from its string representation.
// Used when decoding incoming requests and persisted rows.
func MethodFromString(s string) (Method, error) {
	for method, str := range getValidMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}
