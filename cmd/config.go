package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	AmqpURL          string
	ReminderCronSpec string
	RequestTimeout   time.Duration
}

// DatabaseDSN builds the postgres connection string from the DB fields.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
