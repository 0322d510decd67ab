package main

import (
	"flag"
	"fmt"
	"os"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/models"
	"swaram-cms/app/routes/auth"
)

func main() {
	name := flag.String("name", "", "Full name of the user")
	email := flag.String("email", "", "Email address (login)")
	password := flag.String("password", "", "Initial password")
	role := flag.String("role", "admin", "Role name")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		fmt.Println("Usage: adduser -name \"Full Name\" -email user@example.com -password secret [-role admin]")
		os.Exit(1)
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	userRole, err := database.EnsureRole(db, *role)
	if err != nil {
		fmt.Printf("Error ensuring role %q: %v\n", *role, err)
		os.Exit(1)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Name:   *name,
		Email:  *email,
		RoleID: &userRole.ID,
	}
	if err := database.CreateUser(db, user, hashed); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (%s) role=%s\n", user.Name, user.Email, userRole.Name)
}
