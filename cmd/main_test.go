package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-28"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2026-08-28") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic, logLevel,
		jwtSecret, jwtExp, requestTimeout,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" || requestTimeout != 10 {
		t.Errorf("unexpected app config: %v/%v/%v/%v", appHost, appPort, logLevel, requestTimeout)
	}

	// PostgreSQL
	if pgHost != "localhost" || pgPort != 5431 || pgUser != "app" || pgPassword != "secret" || pgDB != "app" ||
		pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if redisHost != "localhost" || redisPort != 6379 || redisDB != 0 || redisPassword != "" ||
		redisPoolSize != 10 || redisMinIdleConns != 2 {
		t.Errorf("unexpected redis config")
	}

	// Kafka
	if kafkaAddr != "localhost:9092" || kafkaTopic != "adboard-events" {
		t.Errorf("unexpected kafka config")
	}

	// JWT
	if jwtSecret != "my_super_secret_key" || jwtExp != 3600 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("REQUEST_TIMEOUT_SECOND", "30")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "hunter2")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9093")
	os.Setenv("KAFKA_TOPIC", "events")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		kafkaAddr, kafkaTopic, logLevel,
		jwtSecret, jwtExp, requestTimeout,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appHost != "127.0.0.1" || appPort != "9090" || logLevel != "debug" || requestTimeout != 30 {
		t.Errorf("unexpected app config")
	}
	if pgHost != "pg.example.com" || pgPort != 5433 || pgUser != "admin" || pgPassword != "hunter2" || pgDB != "mydb" ||
		pgMaxOpenConns != 20 || pgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if redisHost != "redis.example.com" || redisPort != 6380 || redisDB != 2 || redisPassword != "redispass" ||
		redisPoolSize != 15 || redisMinIdleConns != 5 {
		t.Errorf("unexpected redis config")
	}
	if kafkaAddr != "kafka.example.com:9093" || kafkaTopic != "events" {
		t.Errorf("unexpected kafka config")
	}
	if jwtSecret != "supersecret" || jwtExp != 300 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_InvalidNumeric(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Errorf("expected error for malformed POSTGRES_PORT")
	}
}
