// Command soapclient calls the user SOAP service and prints the result.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"librarygateway/internal/soap"
	"librarygateway/internal/user"
)

func main() {
	url := flag.String("url", "http://localhost:8080/ws", "SOAP endpoint")
	op := flag.String("op", "getAll", "operation: getAll, get or create")
	id := flag.Int64("id", 1, "user id for -op get")
	nome := flag.String("nome", "", "name for -op create")
	email := flag.String("email", "", "email for -op create")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	users := user.NewRemoteEndpoint(soap.NewClient(*url, nil))
	if err := run(ctx, os.Stdout, users, *op, *id, *nome, *email); err != nil {
		var fault *soap.Fault
		if errors.As(err, &fault) {
			logrus.WithField("faultcode", fault.Code).Error(fault.String)
		} else {
			logrus.WithError(err).Error("call failed")
		}
		os.Exit(1)
	}
}

type userService interface {
	GetUser(ctx context.Context, req *user.GetUserRequest) (*user.GetUserResponse, error)
	GetAllUsers(ctx context.Context, req *user.GetAllUsersRequest) (*user.GetAllUsersResponse, error)
	CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.CreateUserResponse, error)
}

func run(ctx context.Context, out io.Writer, users userService, op string, id int64, nome, email string) error {
	switch op {
	case "getAll":
		resp, err := users.GetAllUsers(ctx, &user.GetAllUsersRequest{})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d users\n", len(resp.Usuarios))
		for _, u := range resp.Usuarios {
			printUser(out, u)
		}
	case "get":
		resp, err := users.GetUser(ctx, &user.GetUserRequest{ID: id})
		if err != nil {
			return err
		}
		if resp.Usuario == nil {
			fmt.Fprintf(out, "user %d not found\n", id)
			return nil
		}
		printUser(out, *resp.Usuario)
	case "create":
		resp, err := users.CreateUser(ctx, &user.CreateUserRequest{Nome: nome, Email: email})
		if err != nil {
			return err
		}
		printUser(out, *resp.Usuario)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}

func printUser(out io.Writer, u user.Usuario) {
	fmt.Fprintf(out, "%d\t%s\t%s\n", u.ID, u.Nome, u.Email)
}
