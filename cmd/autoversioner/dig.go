package main

import (
	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/rios0rios0/autoversioner/internal"
)

func injectAppContext(log *logger.Logger) *internal.AppInternal {
	container := dig.New()

	if err := provideLogger(container, log); err != nil {
		panic(err)
	}

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func provideLogger(container *dig.Container, log *logger.Logger) error {
	if err := container.Provide(func() *logger.Logger { return log }); err != nil {
		return err
	}
	return container.Provide(func(l *logger.Logger) logger.FieldLogger { return l })
}
