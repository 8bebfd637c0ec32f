package main

import (
	"errors"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

const (
	exitOK = iota
	exitListFailed
	exitConfigError
	exitAuthFailed
)

// configError marks failures that happen before any request is sent.
type configError struct {
	msg string
	err error
}

func newConfigError(msg string, err error) error {
	return &configError{msg: msg, err: err}
}

func (e *configError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *configError) Unwrap() error {
	return e.err
}

func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}

	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		return exitConfigError
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return exitAuthFailed
		}
	}

	var tokenErr *oauth2.RetrieveError
	if errors.As(err, &tokenErr) && tokenErr.Response != nil {
		switch tokenErr.Response.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return exitAuthFailed
		}
	}

	return exitListFailed
}
