package main

import (
	"regexp"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldcheck"
	"github.com/dmitrymomot/fieldcheck/pkg/predicate"
)

// Order is the document checked by the CLI.
type Order struct {
	ID         string    `yaml:"id"`
	Status     string    `yaml:"status"`
	Currency   string    `yaml:"currency"`
	Customer   *Customer `yaml:"customer"`
	Items      []*Item   `yaml:"items"`
	Shipment   *Shipment `yaml:"shipment"`
	Refunded   *float64  `yaml:"refunded"`
	Gift       bool      `yaml:"gift"`
	Recipients []string  `yaml:"recipients"`
	Coupons    []string  `yaml:"coupons"`
}

type Customer struct {
	Name    string   `yaml:"name"`
	Email   string   `yaml:"email"`
	Phone   string   `yaml:"phone"`
	Locale  string   `yaml:"locale"`
	Address *Address `yaml:"address"`
}

type Address struct {
	Street  string `yaml:"street"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}

type Item struct {
	SKU      string  `yaml:"sku"`
	Quantity int     `yaml:"quantity"`
	Price    float64 `yaml:"price"`
}

type Shipment struct {
	Carrier  string `yaml:"carrier"`
	Tracking string `yaml:"tracking"`
}

const (
	StatusNew       = "new"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusCancelled = "cancelled"
)

var (
	skuPattern     = regexp.MustCompile(`^SKU-\d{4}$`)
	countryPattern = regexp.MustCompile(`^[A-Z]{2}$`)

	supportedLocale = predicate.LanguageIn(language.English, language.German, language.Norwegian)
)

// validateOrder runs one validation session over o.
func validateOrder(o *Order, description, currency string) *fieldcheck.Validator[*Order] {
	v := fieldcheck.Of(o).
		Description(description).
		StringNotEmpty("id", func(o *Order) string { return o.ID }).
		Validate("id", "must be a valid UUID", func(o *Order) bool {
			return o.ID == "" || predicate.NonNilUUID(o.ID)
		}).
		EqualsAny("status", func(o *Order) any { return o.Status },
			StatusNew, StatusPaid, StatusShipped, StatusCancelled).
		Equals("currency", currency, func(o *Order) any { return o.Currency }).
		CollectionIsNotEmpty("items", func(o *Order) any { return o.Items })

	fieldcheck.Map(v, "customer", func(o *Order) *Customer { return o.Customer }, validateCustomer)

	if o == nil {
		return v
	}

	if o.Items != nil {
		fieldcheck.MapEach(v, "items", func(o *Order) []*Item { return o.Items }, validateItem)
		v.Validate("items", "must not repeat a SKU", func(o *Order) bool {
			skus := make([]string, 0, len(o.Items))
			for _, item := range o.Items {
				if item != nil {
					skus = append(skus, item.SKU)
				}
			}
			return predicate.Unique(skus)
		})
	}

	switch o.Status {
	case StatusNew, StatusPaid:
		v.IsNull("shipment", func(o *Order) any { return o.Shipment }).
			IsZeroOrNull("refunded", func(o *Order) any { return o.Refunded })
	case StatusShipped:
		fieldcheck.Map(v, "shipment", func(o *Order) *Shipment { return o.Shipment },
			func(s *fieldcheck.Validator[*Shipment]) {
				s.StringNotEmpty("carrier", func(s *Shipment) string { return s.Carrier }).
					StringNotEmpty("tracking", func(s *Shipment) string { return s.Tracking })
			})
	case StatusCancelled:
		v.CollectionIsEmpty("coupons", func(o *Order) any { return o.Coupons })
	}

	if o.Gift {
		v.SizeEquals("recipients", 1, func(o *Order) any { return o.Recipients })
	}
	return v
}

func validateCustomer(c *fieldcheck.Validator[*Customer]) {
	c.StringNotEmpty("name", func(c *Customer) string { return c.Name }).
		Validate("email", "must be a valid email address", func(c *Customer) bool {
			return predicate.Email(c.Email)
		}).
		Validate("phone", "must be a valid phone number", func(c *Customer) bool {
			return c.Phone == "" || predicate.Phone(c.Phone)
		}).
		Validate("locale", "must be a supported language", func(c *Customer) bool {
			return c.Locale == "" || supportedLocale(c.Locale)
		})

	fieldcheck.Map(c, "address", func(c *Customer) *Address { return c.Address },
		func(a *fieldcheck.Validator[*Address]) {
			a.StringNotEmpty("street", func(a *Address) string { return a.Street }).
				StringNotEmpty("city", func(a *Address) string { return a.City }).
				Validate("country", "must be an ISO 3166 alpha-2 code", func(a *Address) bool {
					return predicate.Matches(countryPattern)(a.Country)
				})
		})
}

func validateItem(i *fieldcheck.Validator[*Item]) {
	i.Validate("sku", "must look like SKU-0000", func(i *Item) bool {
		return predicate.Matches(skuPattern)(i.SKU)
	}).
		Validate("quantity", "must be between 1 and 100", func(i *Item) bool {
			return predicate.Between(1, 100)(i.Quantity)
		}).
		Validate("price", "must be positive", func(i *Item) bool {
			return predicate.Positive(i.Price)
		})
}
