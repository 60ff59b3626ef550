package configuration

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"

	"github.com/zvonler/vex/v2ex"
)

// NewFetcher assembles a listing fetcher from the active configuration.
func NewFetcher() (fetcher *v2ex.Fetcher, err error) {
	fetcher = v2ex.NewFetcher()

	if baseURL := viper.GetString("base-url"); baseURL != "" {
		if _, err = url.Parse(baseURL); err != nil {
			return nil, fmt.Errorf("Bad base-url %q: %v", baseURL, err)
		}
		fetcher.BaseURL = baseURL
	}

	if proxy := viper.GetString("proxy"); proxy != "" {
		if _, err = url.Parse(proxy); err != nil {
			return nil, fmt.Errorf("Bad proxy %q: %v", proxy, err)
		}
		fetcher.Proxy = proxy
	}

	if userAgent := viper.GetString("user-agent"); userAgent != "" {
		fetcher.UserAgent = userAgent
	}

	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		fetcher.Timeout = timeout
	}

	return fetcher, nil
}
