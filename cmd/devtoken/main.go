// Command devtoken prints a bearer token accepted by the gateway write guard.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"librarygateway/internal/platform/crypto"
)

func main() {
	loadEnv()

	secret := flag.String("secret", os.Getenv("AUTH_JWT_SECRET"), "HS256 secret (defaults to AUTH_JWT_SECRET)")
	subject := flag.String("sub", "dev", "token subject")
	role := flag.String("role", "EDITOR", "token role")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	token, jti, err := crypto.GenerateToken(*secret, *subject, *role, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("cannot issue token")
	}
	logrus.WithFields(logrus.Fields{"jti": jti, "sub": *subject, "expires_in": ttl.String()}).Info("token issued")
	fmt.Println(token)
}
