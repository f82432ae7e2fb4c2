package app

import (
	"fmt"
	"os"

	"github.com/rbrander/minesweeper/internal/sims/minesweeper"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger on stderr at the named level.
func NewLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, nil
}

// LogEvents returns an observer that writes game transitions to logger.
func LogEvents(logger logrus.FieldLogger) minesweeper.Observer {
	return func(e minesweeper.Event) {
		switch e.Kind {
		case minesweeper.EventReset:
			logger.WithFields(logrus.Fields{
				"seed":  e.Seed,
				"mines": e.Mines,
			}).Info("board generated")
		case minesweeper.EventLost:
			logger.WithFields(logrus.Fields{
				"x": e.X,
				"y": e.Y,
			}).Info("mine revealed, game lost")
		}
	}
}
