package main

import (
	"flag"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"kisima-schools/app/config"
	"kisima-schools/app/routes/auth"
)

// Seeds a login account. Intended for bootstrapping a fresh install.
func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "login password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", "admin", "role (admin, headteacher, teacher)")
	flag.Parse()

	log := logrus.New()
	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		log.Fatal("email, password, first-name and last-name are required")
	}

	if err := config.Init(log); err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer config.GetDB().Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.WithError(err).Fatal("failed to hash password")
	}

	_, err = config.GetDB().Exec(
		`INSERT INTO users (id, email, password, first_name, last_name, role)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New().String(), *email, hashed, *firstName, *lastName, *role,
	)
	if err != nil {
		log.WithError(err).Fatal("failed to create user")
	}

	fmt.Printf("User created: %s %s (%s, %s)\n", *firstName, *lastName, *email, *role)
}
