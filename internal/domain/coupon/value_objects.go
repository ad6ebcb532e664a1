package coupon

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidName          = errors.New("coupon name must be 1 to 100 characters")
	ErrInvalidType          = errors.New("coupon type must be FCFS, LOTTERY or CODE")
	ErrInvalidDiscountType  = errors.New("discount type must be RATE or AMOUNT")
	ErrInvalidDiscountValue = errors.New("discount value must be at least 1")
	ErrInvalidDiscountRate  = errors.New("rate discount must be between 1 and 100")
)

const maxNameLength = 100

type Name string

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxNameLength {
		return "", ErrInvalidName
	}
	return Name(s), nil
}

func (n Name) String() string {
	return string(n)
}

// Type is kept for catalog compatibility; allocation is first-come-first-served for every type.
type Type string

const (
	TypeFCFS    Type = "FCFS"
	TypeLottery Type = "LOTTERY"
	TypeCode    Type = "CODE"
)

func NewType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case TypeFCFS, TypeLottery, TypeCode:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string {
	return string(t)
}

type DiscountType string

const (
	DiscountRate   DiscountType = "RATE"
	DiscountAmount DiscountType = "AMOUNT"
)

func NewDiscountType(s string) (DiscountType, error) {
	d := DiscountType(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case DiscountRate, DiscountAmount:
		return d, nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func (d DiscountType) String() string {
	return string(d)
}

type Discount struct {
	kind  DiscountType
	value int32
}

func NewDiscount(kind DiscountType, value int32) (Discount, error) {
	if value < 1 {
		return Discount{}, ErrInvalidDiscountValue
	}
	if kind == DiscountRate && value > 100 {
		return Discount{}, ErrInvalidDiscountRate
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Type() DiscountType { return d.kind }
func (d Discount) Value() int32       { return d.value }
