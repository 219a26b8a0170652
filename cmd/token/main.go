// Command token mints a bearer token for the admin API, signed with
// AUTH_SECRET.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/youtube-data-api/internal/config"
	"github.com/vfg2006/youtube-data-api/internal/domain"
	"github.com/vfg2006/youtube-data-api/internal/usecases/authenticating"
)

func main() {
	subject := pflag.StringP("subject", "s", "", "who the token is issued to")
	role := pflag.StringP("role", "r", string(domain.RoleViewer), "admin or viewer")
	ttl := pflag.DurationP("ttl", "t", 24*time.Hour, "token lifetime")
	pflag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticating.NewService(cfg).GenerateToken(*subject, domain.Role(*role), *ttl)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		os.Exit(1)
	}

	fmt.Println(token)
}
