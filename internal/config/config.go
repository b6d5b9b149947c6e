package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultHospitalName    = "Blake Memorial Hospital"
	DefaultCurrency        = "JMD$"
	DefaultConsultationFee = 3000
)

type Config struct {
	Env             string // dev, prod
	LogLevel        string // zerolog level name
	HospitalName    string // printed on receipts
	Currency        string // label for amounts
	ConsultationFee int64  // first line item of every bill
	DemoPatients    int    // patients generated by the demo seeder
	DemoDoctors     int    // doctors generated by the demo seeder
	DemoSlots       int    // available slots per generated doctor
	DemoSeed        uint64 // 0 means time based
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		Env:             "dev",
		LogLevel:        "info",
		HospitalName:    DefaultHospitalName,
		Currency:        DefaultCurrency,
		ConsultationFee: DefaultConsultationFee,
		DemoPatients:    5,
		DemoDoctors:     3,
		DemoSlots:       4,
	}
}

func Load() (Config, error) {
	_ = godotenv.Load()

	def := Default()
	seed := getInt("DEMO_SEED", 0)
	cfg := Config{
		Env:             getEnv("APP_ENV", def.Env),
		LogLevel:        getEnv("LOG_LEVEL", def.LogLevel),
		HospitalName:    getEnv("HOSPITAL_NAME", def.HospitalName),
		Currency:        getEnv("CURRENCY", def.Currency),
		ConsultationFee: int64(getInt("CONSULTATION_FEE", int(def.ConsultationFee))),
		DemoPatients:    getInt("DEMO_PATIENTS", def.DemoPatients),
		DemoDoctors:     getInt("DEMO_DOCTORS", def.DemoDoctors),
		DemoSlots:       getInt("DEMO_SLOTS_PER_DOCTOR", def.DemoSlots),
		DemoSeed:        uint64(max(seed, 0)),
	}

	if cfg.ConsultationFee < 0 {
		return Config{}, errors.New("CONSULTATION_FEE must not be negative")
	}
	if cfg.DemoPatients < 0 || cfg.DemoDoctors < 0 || cfg.DemoSlots < 0 || seed < 0 {
		return Config{}, errors.New("DEMO_* counts must not be negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		fmt.Fprintf(os.Stderr, "invalid integer for %s=%q, using default %d\n", key, v, def)
	}
	return def
}
