// Package settings resolves restaurant settings from stored key/value overrides
// and built-in defaults.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"restaurant-pos/models"
)

// ErrInvalid wraps every validation failure of a settings form
var ErrInvalid = errors.New("invalid settings")

const (
	KeyRestaurantName     = "restaurant_name"
	KeyAddress            = "address"
	KeyPhone              = "phone"
	KeyEmail              = "email"
	KeyCurrency           = "currency"
	KeyTaxRate            = "tax_rate"
	KeyServiceCharge      = "service_charge"
	KeyReceiptHeader      = "receipt_header"
	KeyReceiptFooter      = "receipt_footer"
	KeyShowLogo           = "show_logo"
	KeyOrderNotifications = "order_notifications"
	KeyKitchenAlerts      = "kitchen_alerts"
	KeySoundEnabled       = "sound_enabled"
)

var defaults = map[string]string{
	KeyRestaurantName:     "TanStack Restaurant",
	KeyAddress:            "123 Main Street, City, Country",
	KeyPhone:              "+1 234 567 8900",
	KeyEmail:              "contact@restaurant.com",
	KeyCurrency:           "USD",
	KeyTaxRate:            "10",
	KeyServiceCharge:      "0",
	KeyReceiptHeader:      "Thank you for dining with us!",
	KeyReceiptFooter:      "Please visit us again!",
	KeyShowLogo:           "true",
	KeyOrderNotifications: "true",
	KeyKitchenAlerts:      "true",
	KeySoundEnabled:       "true",
}

// Currencies accepted by the settings form
var Currencies = []string{"USD", "EUR", "GBP", "CAD"}

// Defaults returns a copy of the built-in values
func Defaults() map[string]string {
	out := make(map[string]string, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	return out
}

// Values is the resolved view over stored overrides
type Values map[string]string

// Resolve layers stored on top of the defaults. Empty stored values do not override.
func Resolve(stored []models.Setting) Values {
	v := Values(Defaults())
	for _, s := range stored {
		if s.Value != "" {
			v[s.Key] = s.Value
		}
	}
	return v
}

// Get returns the value for key, or "" when neither stored nor defaulted
func (v Values) Get(key string) string {
	return v[key]
}

func (v Values) float(key string) float64 {
	if f, err := strconv.ParseFloat(v[key], 64); err == nil {
		return f
	}
	f, _ := strconv.ParseFloat(defaults[key], 64)
	return f
}

func (v Values) bool(key string) bool {
	return v[key] == "true"
}

// Form is the typed settings form
type Form struct {
	RestaurantName     string  `json:"restaurant_name" binding:"required"`
	Address            string  `json:"address"`
	Phone              string  `json:"phone"`
	Email              string  `json:"email" binding:"omitempty,email"`
	Currency           string  `json:"currency" binding:"required,currency"`
	TaxRate            float64 `json:"tax_rate" binding:"gte=0,lte=100"`
	ServiceCharge      float64 `json:"service_charge" binding:"gte=0,lte=100"`
	ReceiptHeader      string  `json:"receipt_header"`
	ReceiptFooter      string  `json:"receipt_footer"`
	ShowLogo           bool    `json:"show_logo"`
	OrderNotifications bool    `json:"order_notifications"`
	KitchenAlerts      bool    `json:"kitchen_alerts"`
	SoundEnabled       bool    `json:"sound_enabled"`
}

// Form converts resolved values into the typed form
func (v Values) Form() Form {
	return Form{
		RestaurantName:     v.Get(KeyRestaurantName),
		Address:            v.Get(KeyAddress),
		Phone:              v.Get(KeyPhone),
		Email:              v.Get(KeyEmail),
		Currency:           v.Get(KeyCurrency),
		TaxRate:            v.float(KeyTaxRate),
		ServiceCharge:      v.float(KeyServiceCharge),
		ReceiptHeader:      v.Get(KeyReceiptHeader),
		ReceiptFooter:      v.Get(KeyReceiptFooter),
		ShowLogo:           v.bool(KeyShowLogo),
		OrderNotifications: v.bool(KeyOrderNotifications),
		KitchenAlerts:      v.bool(KeyKitchenAlerts),
		SoundEnabled:       v.bool(KeySoundEnabled),
	}
}

// DefaultForm is the form shown after a reset
func DefaultForm() Form {
	return Resolve(nil).Form()
}

var formValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := v.RegisterValidation("currency", IsCurrency); err != nil {
		panic(err)
	}
	return v
})

// Validate applies the form's binding tags outside of a gin request
func (f Form) Validate() error {
	if err := formValidator().Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// IsCurrency backs the currency validation tag
func IsCurrency(fl validator.FieldLevel) bool {
	return ValidCurrency(fl.Field().String())
}

// ValidCurrency reports whether c is one of Currencies
func ValidCurrency(c string) bool {
	for _, known := range Currencies {
		if c == known {
			return true
		}
	}
	return false
}

// Pairs flattens the form into the key/value rows that get stored
func (f Form) Pairs() []models.Setting {
	return []models.Setting{
		{Key: KeyRestaurantName, Value: f.RestaurantName},
		{Key: KeyAddress, Value: f.Address},
		{Key: KeyPhone, Value: f.Phone},
		{Key: KeyEmail, Value: f.Email},
		{Key: KeyCurrency, Value: f.Currency},
		{Key: KeyTaxRate, Value: strconv.FormatFloat(f.TaxRate, 'f', -1, 64)},
		{Key: KeyServiceCharge, Value: strconv.FormatFloat(f.ServiceCharge, 'f', -1, 64)},
		{Key: KeyReceiptHeader, Value: f.ReceiptHeader},
		{Key: KeyReceiptFooter, Value: f.ReceiptFooter},
		{Key: KeyShowLogo, Value: strconv.FormatBool(f.ShowLogo)},
		{Key: KeyOrderNotifications, Value: strconv.FormatBool(f.OrderNotifications)},
		{Key: KeyKitchenAlerts, Value: strconv.FormatBool(f.KitchenAlerts)},
		{Key: KeySoundEnabled, Value: strconv.FormatBool(f.SoundEnabled)},
	}
}
