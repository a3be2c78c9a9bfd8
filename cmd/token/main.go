// Command token mints a bearer token signed with the configured access secret.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"directory/config"
	"directory/internal/domain/entity"
	"directory/internal/infra/auth"

	"github.com/pkg/errors"
)

func main() {
	subject := flag.String("subject", "admin", "Token subject")
	roles := flag.String("roles", entity.RoleAdmin.String(), "Comma-separated roles (reader, admin)")
	flag.Parse()

	token, err := mint(*subject, *roles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}

func mint(subject, rawRoles string) (string, error) {
	roles, err := parseRoles(rawRoles)
	if err != nil {
		return "", err
	}

	cfg, err := config.New()
	if err != nil {
		return "", errors.Wrap(err, "load config")
	}

	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return "", errors.Wrap(err, "create token service")
	}

	return tokens.GenerateToken(subject, roles)
}

func parseRoles(raw string) ([]string, error) {
	var roles []string
	for part := range strings.SplitSeq(raw, ",") {
		role := entity.Role(strings.TrimSpace(part))
		if role == "" {
			continue
		}
		if !role.IsValid() {
			return nil, errors.Errorf("unknown role %q", role)
		}
		roles = append(roles, role.String())
	}

	if len(roles) == 0 {
		return nil, errors.New("at least one role is required")
	}

	return roles, nil
}
