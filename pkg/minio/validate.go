package minio

import "pharmaclear-api/config"

func validateConfig(cfg *config.MinIOConfig) error {
	if cfg == nil || cfg.Endpoint == "" {
		return ErrEndpointRequired
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return ErrCredentialRequired
	}
	return nil
}
