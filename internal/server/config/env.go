package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the environment. An optional .env
// file in the working directory is loaded first (existing environment
// variables win over file values).
//
// Recognized variables:
//
//	GRPC_ADDR                 gRPC bind address (e.g. ":50051")
//	DATABASE_DSN              PostgreSQL DSN
//	DOMAIN                    public domain name
//	DEV_MODE                  "true" relaxes the JWT secret requirement
//	JWT_SECRET                HMAC signing secret
//	JWT_ACCESS_EXPIRY_HOURS   access token lifetime, hours
//	JWT_REFRESH_EXPIRY_DAYS   refresh token lifetime, days
//	S3_ENDPOINT, S3_REGION, S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY
//	MAX_SETTING_VALUE_KB      per-entry settings value cap
//	MAX_FILE_SIZE_MB          streamed upload size cap
//	UPLOAD_CHUNK_KB           download/upload chunk size
//	VERIFY_UPLOAD_CHECKSUM    "false" disables checksum verification on upload
func parseEnv(config *Config) error {
	// Missing .env is fine; the environment alone is a valid source.
	_ = godotenv.Load()

	setString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.Domain, "DOMAIN")
	setString(&config.SecretKey, "JWT_SECRET")
	setString(&config.S3Endpoint, "S3_ENDPOINT")
	setString(&config.S3Region, "S3_REGION")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3AccessKey, "S3_ACCESS_KEY")
	setString(&config.S3SecretKey, "S3_SECRET_KEY")

	if err := setBool(&config.DevMode, "DEV_MODE"); err != nil {
		return err
	}
	if err := setBool(&config.VerifyUploadChecksum, "VERIFY_UPLOAD_CHECKSUM"); err != nil {
		return err
	}

	if err := setDuration(&config.AccessTokenTTL, "JWT_ACCESS_EXPIRY_HOURS", time.Hour); err != nil {
		return err
	}
	if err := setDuration(&config.RefreshTokenTTL, "JWT_REFRESH_EXPIRY_DAYS", 24*time.Hour); err != nil {
		return err
	}

	if err := setScaledInt(&config.MaxSettingValueBytes, "MAX_SETTING_VALUE_KB", 1024); err != nil {
		return err
	}
	if err := setScaledInt64(&config.MaxFileSizeBytes, "MAX_FILE_SIZE_MB", 1024*1024); err != nil {
		return err
	}
	if err := setScaledInt(&config.UploadChunkSize, "UPLOAD_CHUNK_KB", 1024); err != nil {
		return err
	}

	return nil
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok {
		*dst = v
	}
}

func setBool(dst *bool, name string) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s: %w", name, err)
	}
	*dst = b
	return nil
}

func setDuration(dst *time.Duration, name string, unit time.Duration) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s: %w", name, err)
	}
	*dst = time.Duration(n) * unit
	return nil
}

func setScaledInt(dst *int, name string, scale int) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: invalid %s: %w", name, err)
	}
	*dst = n * scale
	return nil
}

func setScaledInt64(dst *int64, name string, scale int64) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("config: invalid %s: %w", name, err)
	}
	*dst = n * scale
	return nil
}
