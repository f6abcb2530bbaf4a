// Command create-admin creates an account, or promotes an existing one, with
// the admin role.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Misha2007/smart-city-event-map/internal/app"
	"github.com/Misha2007/smart-city-event-map/internal/config"
	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/repository"
	"github.com/Misha2007/smart-city-event-map/internal/service"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/term"
)

func main() {
	flag.String("config", "", "path to config file")
	email := flag.String("email", "", "admin email")
	role := flag.String("role", string(domain.RoleAdmin), "role to grant (user, moderator, admin)")
	flag.Parse()

	cfg := config.MustLoad()

	lg, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	if *email == "" {
		if *email, err = prompt("Email: "); err != nil {
			log.Fatalf("read email: %v", err)
		}
	}
	password, err := readPassword()
	if err != nil {
		log.Fatalf("read password: %v", err)
	}

	ctx := context.Background()
	db, err := app.ConnectDB(ctx, cfg, lg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Master.Close()

	auth := service.NewAuthService(
		repository.NewUserRepo(db),
		repository.NewSessionRepo(db),
		repository.NewProfileRepo(db),
		cfg.Auth.SessionTTL,
		lg,
	)

	user, err := auth.EnsureUser(ctx, domain.Credentials{Email: *email, Password: password}, domain.Role(*role))
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}

	lg.LogAttrs(ctx, logger.InfoLevel, "account ready",
		logger.String("user_id", user.ID),
		logger.String("email", user.Email),
		logger.String("role", *role),
	)
}

func prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword hides input on a terminal and falls back to a plain line for
// piped stdin.
func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt("")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
