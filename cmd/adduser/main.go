package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
)

func main() {
	role := flag.String("role", "eleve", "role of the account: admin, prof or eleve")
	username := flag.String("username", "", "login username")
	password := flag.String("password", "", "login password")
	name := flag.String("name", "", "display name (first name for students)")
	classe := flag.String("classe", "", "class label for a student")
	classes := flag.String("classes", "", "comma-separated class labels for a teacher")
	flag.Parse()

	if *username == "" || *password == "" || *name == "" {
		fmt.Println("username, password and name are required")
		flag.Usage()
		os.Exit(1)
	}

	config.Init()
	s := config.GetStore()
	defer s.Close()

	var err error
	switch models.Role(*role) {
	case models.RoleAdmin:
		err = database.CreateAdmin(s, &models.Admin{Username: *username, Password: *password, Name: *name})
	case models.RoleProf:
		var labels []string
		for _, c := range strings.Split(*classes, ",") {
			if trimmed := strings.TrimSpace(c); trimmed != "" {
				labels = append(labels, trimmed)
			}
		}
		err = database.CreateTeacher(s, &models.Teacher{Username: *username, Password: *password, Name: *name, Classes: labels})
	case models.RoleEleve:
		err = database.CreateStudent(s, &models.Student{Username: *username, Password: *password, Prenom: *name, Classe: *classe})
	default:
		fmt.Printf("Unknown role %q\n", *role)
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (%s)\n", *name, *username)
}
