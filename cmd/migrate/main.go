package main

import (
	"github.com/sirupsen/logrus"

	"kisima-schools/app/config"
	"kisima-schools/app/database"
)

// Applies the schema without starting the server. Useful for deploy
// pipelines that migrate before rolling new instances.
func main() {
	log := logrus.New()

	if err := config.Init(log); err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB(), log); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	log.Info("Migrations completed")
}
