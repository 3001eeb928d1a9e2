package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentStatus is persisted and serialized by name, never by ordinal.
type PaymentStatus uint8

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusPending
	PaymentStatusCompleted
	PaymentStatusFailed
	PaymentStatusRefunded
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentStatusPending:   "Pending",
	PaymentStatusCompleted: "Completed",
	PaymentStatusFailed:    "Failed",
	PaymentStatusRefunded:  "Refunded",
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for st, name := range paymentStatusNames {
		if name == s {
			return st, nil
		}
	}
	return PaymentStatusUnknown, fmt.Errorf("unknown payment status %q", s)
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatusNames[s]
	return ok
}

func (s PaymentStatus) String() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s PaymentStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid payment status %d", s)
	}
	return s.String(), nil
}

func (s *PaymentStatus) Scan(src any) error {
	var name string
	switch v := src.(type) {
	case string:
		name = v
	case []byte:
		name = string(v)
	case nil:
		*s = PaymentStatusUnknown
		return nil
	default:
		return fmt.Errorf("cannot scan %T into PaymentStatus", src)
	}
	st, err := ParsePaymentStatus(name)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON leaves unknown names as PaymentStatusUnknown so validation can report them.
func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("payment status must be a string: %w", err)
	}
	st, err := ParsePaymentStatus(name)
	if err != nil {
		*s = PaymentStatusUnknown
		return nil
	}
	*s = st
	return nil
}
