package config

import "errors"

var (
	ErrUnknownObject  = errors.New("config: unknown object kind")
	ErrMassOutOfRange = errors.New("config: mass outside allowed range")
	ErrBadTiming      = errors.New("config: bad timing value")
	ErrBadDistance    = errors.New("config: bad distance value")
	ErrBadScript      = errors.New("config: bad script cue")
)
