package payment

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMethod = errors.New("unknown payment method")

type Method string

const (
	MethodCash  Method = "cash"
	MethodGCash Method = "gcash"
	MethodCard  Method = "card"
)

// Methods lists every accepted method, in the order offered at checkout.
func Methods() []Method {
	return []Method{MethodCash, MethodGCash, MethodCard}
}

func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodCash:
		return MethodCash, nil
	case MethodGCash:
		return MethodGCash, nil
	case MethodCard:
		return MethodCard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

func (m Method) String() string { return string(m) }

func (m Method) DisplayName() string {
	switch m {
	case MethodCash:
		return "Cash on Pickup"
	case MethodGCash:
		return "GCash"
	case MethodCard:
		return "Debit/Credit Card"
	default:
		return string(m)
	}
}
