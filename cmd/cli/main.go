package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	infra_eventbus "github.com/fortizbank/fortiz/infra/eventbus"
	"github.com/fortizbank/fortiz/infra/initializer"
	"github.com/fortizbank/fortiz/pkg/app"
	"github.com/fortizbank/fortiz/pkg/config"
	"github.com/fortizbank/fortiz/pkg/domain/user"
	"github.com/google/uuid"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  kyc-pending            list submissions waiting for review
  kyc-approve <id>       approve a submission
  kyc-reject <id> [note] reject a submission
  accounts <email>       list the accounts of a user
  promote <email>        grant the admin role to a user`

var (
	bold    = color.New(color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)
	muted   = color.New(color.FgHiBlack)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	if err := run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		failure.Fprintln(os.Stderr, "Error:", err) //nolint: errcheck
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	// Deliver notifications before the process exits.
	deps.EventBus = infra_eventbus.NewWithMemory(deps.Logger)
	a := app.New(deps, cfg)

	switch cmd {
	case "kyc-pending":
		return pendingKyc(ctx, a)
	case "kyc-approve", "kyc-reject":
		if len(args) < 1 {
			return fmt.Errorf("usage: %s <submission_id>", cmd)
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid submission id: %w", err)
		}
		reviewer, err := confirmAdmin(ctx, a)
		if err != nil {
			return err
		}
		action := strings.TrimPrefix(cmd, "kyc-")
		sub, err := a.AdminService.ReviewKyc(ctx, reviewer, id, action, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		success.Printf("Submission %s %s\n", sub.ID, sub.Status) //nolint: errcheck
		return nil
	case "accounts":
		if len(args) < 1 {
			return errors.New("usage: accounts <email>")
		}
		return listAccounts(ctx, a, args[0])
	case "promote":
		if len(args) < 1 {
			return errors.New("usage: promote <email>")
		}
		// Runs unconfirmed so the first admin can be bootstrapped.
		u, _, err := a.AdminService.UserAccounts(ctx, args[0])
		if err != nil {
			return err
		}
		if err := a.AdminService.UpdateRole(ctx, u.ID, string(user.RoleAdmin)); err != nil {
			return err
		}
		success.Printf("%s is now an admin\n", u.Email) //nolint: errcheck
		return nil
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func pendingKyc(ctx context.Context, a *app.App) error {
	list, err := a.AdminService.ListKyc(ctx, "pending")
	if err != nil {
		return err
	}
	if len(list) == 0 {
		muted.Println("No pending submissions") //nolint: errcheck
		return nil
	}
	for _, sub := range list {
		bold.Printf("%s  ", sub.ID) //nolint: errcheck
		fmt.Printf("%-24s %-16s %s\n", sub.FullName, sub.DocumentType, sub.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func listAccounts(ctx context.Context, a *app.App, email string) error {
	u, accounts, err := a.AdminService.UserAccounts(ctx, email)
	if err != nil {
		return err
	}
	bold.Printf("%s (%s, kyc %s)\n", u.FullName, u.Role, u.KycStatus) //nolint: errcheck
	if len(accounts) == 0 {
		muted.Println("No accounts") //nolint: errcheck
		return nil
	}
	for _, acc := range accounts {
		fmt.Printf("%s  %-10s %s  balance=%s available=%s  %s\n",
			acc.ID, acc.AccountType, acc.AccountNumber,
			acc.Balance.StringFixed(2), acc.AvailableBalance.StringFixed(2), acc.Status)
	}
	return nil
}

// confirmAdmin prompts for admin credentials and returns the admin's id.
func confirmAdmin(ctx context.Context, a *app.App) (uuid.UUID, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Admin email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to read email: %w", err)
	}
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to read password: %w", err)
	}

	u, err := a.AuthService.Login(ctx, strings.TrimSpace(email), string(password))
	if err != nil {
		return uuid.Nil, err
	}
	if u.Role != string(user.RoleAdmin) {
		return uuid.Nil, errors.New("admin role required")
	}
	return u.ID, nil
}
