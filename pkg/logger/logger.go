package logger

import (
	"go.uber.org/zap"
)

// NewLogger returns the production JSON logger when running remotely and a
// human readable development logger otherwise.
func NewLogger(isAtRemote bool) (*zap.SugaredLogger, error) {
	var (
		log *zap.Logger
		err error
	)

	if isAtRemote {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
