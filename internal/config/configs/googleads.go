package configs

import "time"

// GoogleAds holds the credentials used to call the Google Ads REST API. The
// OAuth fields describe an installed application refresh token.
type GoogleAds struct {
	DeveloperToken  string `env:"DEVELOPER_TOKEN"`
	ClientID        string `env:"CLIENT_ID"`
	ClientSecret    string `env:"CLIENT_SECRET"`
	RefreshToken    string `env:"REFRESH_TOKEN"`
	LoginCustomerID string `env:"LOGIN_CUSTOMER_ID"`
	// CustomerID is the account campaigns are created in.
	CustomerID string `env:"CUSTOMER_ID"`

	APIVersion string        `env:"API_VERSION" envDefault:"v18"`
	Endpoint   string        `env:"ENDPOINT" envDefault:"https://googleads.googleapis.com"`
	TokenURL   string        `env:"TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"60s"`
	// RetryMax is the number of retries on transport errors and 5xx
	// responses. Zero disables retries.
	RetryMax int `env:"RETRY_MAX" envDefault:"0"`
}
