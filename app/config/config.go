package config

import (
	"log"
	"os"

	"ecole-portail/app/store"

	"github.com/joho/godotenv"
)

type Config struct {
	Store *store.Store
	Addr  string
}

var AppConfig *Config

// Init loads the environment and opens the record store. The store file is
// the only persistence this application has.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	path := os.Getenv("STORE_PATH")
	if path == "" {
		path = "ecole.db"
	}

	s, err := store.Open(path)
	if err != nil {
		log.Fatal("Failed to open record store:", err)
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	AppConfig = &Config{
		Store: s,
		Addr:  addr,
	}
	log.Printf("Record store opened at %s", path)
}

func GetStore() *store.Store {
	return AppConfig.Store
}
