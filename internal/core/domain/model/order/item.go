package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line of an order: a product name, a positive quantity and a
// non-negative unit price. Items have no identity of their own; they are
// created with their order and deleted with it.
type Item struct {
	productName string
	quantity    int
	price       float64

	isConstructed bool
}

// NewItem creates a validated order line.
//
// Rules:
//   - productName must not be empty
//   - quantity must be greater than 0
//   - price must not be negative
func NewItem(productName string, quantity int, price float64) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductName returns the free-text label of the ordered product.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered amount.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

func (i *Item) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}
