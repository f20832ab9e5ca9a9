package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 || c.Auth.OAuthStateTTL <= 0 {
		return fmt.Errorf("auth token and state TTLs must be > 0")
	}

	if err := c.Zoom.validate(); err != nil {
		return fmt.Errorf("zoom: %w", err)
	}

	if c.Upload.MaxSize <= 0 {
		return fmt.Errorf("upload.max_size must be > 0 (got %d)", c.Upload.MaxSize)
	}

	if c.Import.BatchWorkers < 1 {
		return fmt.Errorf("import.batch_workers must be >= 1 (got %d)", c.Import.BatchWorkers)
	}
	if c.Import.BatchMaxMeetings < 1 {
		return fmt.Errorf("import.batch_max_meetings must be >= 1 (got %d)", c.Import.BatchMaxMeetings)
	}

	if c.RateLimit.AuthPerMinute < 1 {
		return fmt.Errorf("rate_limit.auth_per_minute must be >= 1 (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}

func (z *ZoomConfig) validate() error {
	set := 0
	for _, v := range []string{z.ClientID, z.ClientSecret, z.RedirectURI} {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != 3 {
		return fmt.Errorf("client_id, client_secret and redirect_uri must be set together")
	}
	if z.APITimeout <= 0 || z.DownloadTimeout <= 0 {
		return fmt.Errorf("api_timeout and download_timeout must be > 0")
	}
	if z.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", z.MaxRetries)
	}
	return nil
}
