// Package settings keeps the store configuration in a local key-value file.
// Settings are informal operator data, not durable business state; the
// database never sees them.
package settings

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// StoreSettings holds the merchant-facing store configuration
type StoreSettings struct {
	StoreName         string  `mapstructure:"store_name" json:"store_name"`
	StoreAddress      string  `mapstructure:"store_address" json:"store_address"`
	StorePhone        string  `mapstructure:"store_phone" json:"store_phone"`
	StoreEmail        string  `mapstructure:"store_email" json:"store_email"`
	LogoURL           string  `mapstructure:"logo_url" json:"logo_url"`
	BaseDeliveryFee   float64 `mapstructure:"base_delivery_fee" json:"base_delivery_fee"`
	MinimumOrderValue float64 `mapstructure:"minimum_order_value" json:"minimum_order_value"`
	DeliveryRadiusKM  float64 `mapstructure:"delivery_radius_km" json:"delivery_radius_km"`
}

// Store reads and writes StoreSettings through a viper-backed file
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// NewStore opens the settings file at path. A missing file is not an error;
// defaults apply until the first save.
func NewStore(path string) *Store {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("store_name", "Aura beach & fit")
	v.SetDefault("store_address", "")
	v.SetDefault("store_phone", "(62) 99684-2833")
	v.SetDefault("store_email", "")
	v.SetDefault("logo_url", "")
	v.SetDefault("base_delivery_fee", 5.00)
	v.SetDefault("minimum_order_value", 25.00)
	v.SetDefault("delivery_radius_km", 10.00)

	// existing file overrides the defaults
	_ = v.ReadInConfig()

	return &Store{v: v, path: path}
}

// Get returns the current settings
func (s *Store) Get() (StoreSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out StoreSettings
	if err := s.v.Unmarshal(&out); err != nil {
		return StoreSettings{}, errors.Wrap(err, "decode store settings")
	}
	return out, nil
}

// Save replaces the settings and writes them to the file
func (s *Store) Save(in StoreSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set("store_name", in.StoreName)
	s.v.Set("store_address", in.StoreAddress)
	s.v.Set("store_phone", in.StorePhone)
	s.v.Set("store_email", in.StoreEmail)
	s.v.Set("logo_url", in.LogoURL)
	s.v.Set("base_delivery_fee", in.BaseDeliveryFee)
	s.v.Set("minimum_order_value", in.MinimumOrderValue)
	s.v.Set("delivery_radius_km", in.DeliveryRadiusKM)

	if err := s.v.WriteConfigAs(s.path); err != nil {
		return errors.Wrap(err, "write store settings")
	}
	return nil
}
