// Command create-admin cria um usuário administrador ou promove um usuário
// existente com o mesmo email.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
	"gorm.io/gorm"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/ports"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/config"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/logging"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/security"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

// opener abre o banco já com o schema aplicado e devolve como fechá-lo
type opener func(logger ports.Logger) (*gorm.DB, func() error, error)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, openDatabase); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, open opener) error {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(stderr)

	name := fs.String("name", "", "Nome do administrador (obrigatório ao criar)")
	email := fs.String("email", "", "Email do administrador")
	passwordFlag := fs.String("password", "", "Senha (opcional, será pedida se omitida)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*email) == "" {
		fmt.Fprintln(stdout, "Usage: create-admin -email <email> [-name <nome>] [-password <senha>]")
		fs.PrintDefaults()
		return errors.New("missing required flags: email")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if len(password) < 6 {
		return errors.New("password must have at least 6 characters")
	}

	logger := logging.NewSlogLogger("warn", stderr)

	db, closeDB, err := open(logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = closeDB() }()

	userRepo := postgres.NewUserRepository(db)
	userService := services.NewUserService(
		userRepo,
		postgres.NewUnitOfWork(db),
		security.NewBcryptHasher(bcrypt.DefaultCost),
		nil,
		0,
		logger,
	)

	user, created, err := userService.EnsureAdmin(ctx, *name, *email, password)
	if err != nil {
		return fmt.Errorf("failed to ensure admin: %w", err)
	}

	if created {
		fmt.Fprintf(stdout, "Admin %s created successfully with ID %d\n", user.Email, user.ID)
	} else {
		fmt.Fprintf(stdout, "User %s promoted to admin (ID %d)\n", user.Email, user.ID)
	}
	return nil
}

func openDatabase(logger ports.Logger) (*gorm.DB, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := postgres.PrepareSchema(db, cfg); err != nil {
		_ = postgres.Close(db)
		return nil, nil, err
	}

	return db, func() error { return postgres.Close(db) }, nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// entrada redirecionada (pipes e testes)
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
