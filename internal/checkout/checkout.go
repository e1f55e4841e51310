package checkout

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	html "github.com/gofiber/template/html/v2"

	"greenleaf/internal/domain"
	applog "greenleaf/internal/log"
	"greenleaf/internal/mailer"
	"greenleaf/internal/store"
	"greenleaf/internal/validate"
)

var ErrEmptyCart = errors.New("checkout: cart is empty")

const (
	DeliveryASAP      = "asap"
	DeliveryScheduled = "scheduled"
)

type ShippingInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`

	DeliveryOption string `json:"deliveryOption"` // asap | scheduled
	DeliveryDate   string `json:"deliveryDate"`   // YYYY-MM-DD
	DeliveryTime   string `json:"deliveryTime"`
}

// Validate returns field name to message for everything wrong with the form.
// An empty map means the info is usable.
func (s ShippingInfo) Validate() map[string]string {
	errs := map[string]string{}
	required := map[string]string{
		"fullName": s.FullName,
		"phone":    s.Phone,
		"address":  s.Address,
		"city":     s.City,
		"state":    s.State,
		"zipCode":  s.ZipCode,
	}
	for field, v := range required {
		if _, ok := validate.Required(v); !ok {
			errs[field] = "This field is required"
		}
	}
	if s.Phone != "" && !validate.Phone(s.Phone) {
		errs["phone"] = "Please enter a valid 10-digit phone number"
	}
	if s.ZipCode != "" && !validate.ZIP(s.ZipCode) {
		errs["zipCode"] = "Please enter a valid ZIP code"
	}
	if s.DeliveryOption == DeliveryScheduled {
		if !validate.Date(s.DeliveryDate) {
			errs["deliveryDate"] = "Please select a delivery date"
		} else if !withinScheduleWindow(s.DeliveryDate, time.Now()) {
			errs["deliveryDate"] = "Please pick a date within the next 30 days"
		}
		if _, ok := validate.Required(s.DeliveryTime); !ok {
			errs["deliveryTime"] = "Please select a delivery time"
		}
	}
	return errs
}

// Scheduled deliveries book at most 30 days out.
func withinScheduleWindow(date string, now time.Time) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(today) && !d.After(today.AddDate(0, 0, 30))
}

// DeliveryWindow formats the requested delivery slot for the order e-mail.
func (s ShippingInfo) DeliveryWindow() string {
	if s.DeliveryOption != DeliveryScheduled {
		return "ASAP (Within 30 to 45 minutes)"
	}
	d, err := time.Parse("2006-01-02", s.DeliveryDate)
	if err != nil {
		return s.DeliveryTime
	}
	return fmt.Sprintf("%s at %s", d.Format("Monday, January 2, 2006"), s.DeliveryTime)
}

type Order struct {
	Number    string            `json:"orderNumber"`
	Date      time.Time         `json:"date"`
	Shipping  ShippingInfo      `json:"shipping"`
	Items     []domain.LineItem `json:"items"`
	Subtotal  float64           `json:"subtotal"`
	Discounts float64           `json:"discounts"`
	Total     float64           `json:"total"`
}

// Service builds order payloads from a cart snapshot and relays them to the
// fulfillment inbox. The cart is cleared only after the relay confirms the
// send; a failed send leaves the cart intact for retry.
type Service struct {
	views *html.Engine
	mail  mailer.Sender
	inbox string
}

func NewService(templateDir string, mail mailer.Sender, inbox string) (*Service, error) {
	views := html.New(templateDir, ".html")
	if err := views.Load(); err != nil {
		return nil, fmt.Errorf("checkout: load templates: %w", err)
	}
	return &Service{views: views, mail: mail, inbox: inbox}, nil
}

func (s *Service) Place(cart *store.Cart, info ShippingInfo) (Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	now := time.Now()
	ord := Order{
		Number:    fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Date:      now,
		Shipping:  info,
		Items:     items,
		Subtotal:  cart.Total(),
		Discounts: cart.Savings(),
		Total:     cart.Total(),
	}

	body, err := s.renderEmail(ord)
	if err != nil {
		return Order{}, err
	}
	if err := s.mail.Send(mailer.Message{
		To:      s.inbox,
		Subject: fmt.Sprintf("New order %s", ord.Number),
		HTML:    body,
	}); err != nil {
		return Order{}, fmt.Errorf("checkout: relay order: %w", err)
	}

	// Order is placed. Clearing only misses the persistence cache on error;
	// the in-memory cart is already empty.
	if err := cart.Clear(); err != nil {
		applog.Error(nil, "checkout.cart_clear", err, map[string]any{"order": ord.Number})
	}
	return ord, nil
}

type emailRow struct {
	Name      string
	Quantity  int
	LineTotal string
}

func (s *Service) renderEmail(ord Order) (string, error) {
	rows := make([]emailRow, 0, len(ord.Items))
	for _, li := range ord.Items {
		name := li.Name
		if li.SelectedOption != nil {
			name = fmt.Sprintf("%s (%s)", li.Name, li.SelectedOption.Option)
		}
		rows = append(rows, emailRow{
			Name:      name,
			Quantity:  li.Quantity,
			LineTotal: fmt.Sprintf("$%.2f", li.Price*float64(li.Quantity)),
		})
	}

	discounts := "$0.00"
	if ord.Discounts > 0 {
		discounts = fmt.Sprintf("-$%.2f", ord.Discounts)
	}

	var buf bytes.Buffer
	err := s.views.Render(&buf, "order_email", map[string]any{
		"OrderNumber":     ord.Number,
		"OrderDate":       ord.Date.Format("Monday, January 2, 2006"),
		"CustomerName":    ord.Shipping.FullName,
		"CustomerPhone":   ord.Shipping.Phone,
		"CustomerAddress": fmt.Sprintf("%s, %s, %s %s", ord.Shipping.Address, ord.Shipping.City, ord.Shipping.State, ord.Shipping.ZipCode),
		"DeliveryTime":    ord.Shipping.DeliveryWindow(),
		"Items":           rows,
		"Subtotal":        fmt.Sprintf("$%.2f", ord.Subtotal),
		"Discounts":       discounts,
		"Total":           fmt.Sprintf("$%.2f", ord.Total),
	})
	if err != nil {
		return "", fmt.Errorf("checkout: render order email: %w", err)
	}
	return buf.String(), nil
}
