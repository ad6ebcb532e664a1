// Command admintoken prints a signed bearer token for the admin API.
// It reads JWT_SECRET and JWT_DURATION from the environment like the server.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"flash-coupon/internal/domain/user"
	"flash-coupon/internal/pkg/clock"
	"flash-coupon/internal/pkg/config"
	"flash-coupon/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	role := flag.String("role", user.RoleAdmin.String(), "role claim (viewer, operator, admin)")
	subject := flag.String("sub", "", "user id claim; a random id when empty")
	flag.Parse()

	if err := run(*role, *subject); err != nil {
		fmt.Fprintln(os.Stderr, "admintoken:", err)
		os.Exit(1)
	}
}

func run(roleFlag, subject string) error {
	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return fmt.Errorf("invalid JWT_DURATION: %w", err)
	}

	role, err := user.NewRole(roleFlag)
	if err != nil {
		return err
	}

	userID := uuid.New()
	if subject != "" {
		if userID, err = uuid.Parse(subject); err != nil {
			return fmt.Errorf("invalid -sub: %w", err)
		}
	}

	token, err := jwt.NewService(cfg.Secret, duration, clock.NewRealClock()).GenerateToken(userID, role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
