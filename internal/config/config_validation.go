package config

import (
	"errors"
	"net/url"
)

func (c *StructuredConfig) validate() error {
	var errs []error

	if c.App.TokenSignKey == "" {
		errs = append(errs, ErrEmptyTokenSignKey)
	}
	if c.Server.HTTPAddress == "" {
		errs = append(errs, ErrEmptyServerAddress)
	}
	if c.Server.RequestTimeout < 0 {
		errs = append(errs, ErrNegativeTimeout)
	}

	return errors.Join(errs...)
}

func (c *ClientConfig) validate() error {
	var errs []error

	if c.Adapter.HTTPAddress == "" {
		errs = append(errs, ErrEmptyAdapterAddress)
	} else if u, err := url.Parse(c.Adapter.HTTPAddress); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ErrInvalidAdapterAddress)
	}
	if c.Storage.SessionDSN == "" {
		errs = append(errs, ErrEmptySessionDSN)
	}
	if c.Adapter.RequestTimeout < 0 {
		errs = append(errs, ErrNegativeTimeout)
	}

	return errors.Join(errs...)
}
