// hostelctl is the operator CLI for the hostel management store. It talks
// to the same SQLite database the API server uses, so it must not run while
// the server holds the file (WAL mode tolerates it, but seeding mid-request
// is asking for confusion).
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/praneeth-grandhi/Hostel-Management/internal/config"
	"github.com/praneeth-grandhi/Hostel-Management/internal/data"
	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/seed"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hostelctl",
		Short:         "Manage the hostel management database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(seedCmd(), dumpCmd(), createAdminCmd())
	return root
}

// openStore opens the configured backend the same way the server does.
func openStore() (*store.Store, func(), error) {
	cfg := config.Load()
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelWarn,
		TimeFormat: time.Kitchen,
	}))

	if cfg.DatabaseURL == ":memory:" {
		return nil, nil, fmt.Errorf("DATABASE_URL is :memory:; hostelctl needs a database file")
	}
	backend, err := store.OpenSQLite(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return store.New(backend, log), func() { backend.Close() }, nil
}

func seedCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the demo dataset (no-op if already seeded)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeFn, err := openStore()
			if err != nil {
				return err
			}
			defer closeFn()

			mgr := seed.NewManager(st, data.NewCollections(st), hashPassword)
			res := mgr.Seed(force)
			if res.Status == seed.StatusSkipped {
				fmt.Println("already seeded; use --force to overwrite")
				return nil
			}
			for name, n := range res.Counts {
				fmt.Printf("%-15s %d\n", name, n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "reset all collections to the demo defaults")
	return cmd
}

func dumpCmd() *cobra.Command {
	known := []string{
		data.KeyOwners, data.KeyHostels, data.KeyRooms, data.KeyBookings,
		data.KeyStays, data.KeyComplaints, data.KeyNotifications,
		data.KeyMyHostel, data.KeyProfile, data.KeyAuth, data.KeySeedMarker,
	}
	return &cobra.Command{
		Use:   "dump <collection>",
		Short: "Print a stored collection as indented JSON",
		Long:  "Known collections: " + strings.Join(known, ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeFn, err := openStore()
			if err != nil {
				return err
			}
			defer closeFn()

			var raw json.RawMessage
			if !st.Get(args[0], &raw) {
				return fmt.Errorf("nothing stored under %q", args[0])
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, raw, "", "  "); err != nil {
				return fmt.Errorf("stored value is not valid JSON: %w", err)
			}
			fmt.Println(pretty.String())
			return nil
		},
	}
}

func createAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-admin <email>",
		Short: "Create a co-admin owner account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.ToLower(strings.TrimSpace(args[0]))
			if email == "" {
				return fmt.Errorf("email is required")
			}

			fmt.Print("Password: ")
			pw, err := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			if len(pw) < 6 {
				return fmt.Errorf("password must be at least 6 characters")
			}

			st, closeFn, err := openStore()
			if err != nil {
				return err
			}
			defer closeFn()

			cols := data.NewCollections(st)
			for _, o := range cols.Owners.LoadAll() {
				if strings.EqualFold(o.Email, email) {
					return fmt.Errorf("an owner with email %s already exists", email)
				}
			}

			hash, err := bcrypt.GenerateFromPassword(pw, bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			owner := models.Owner{
				ID:           store.NewID("owner"),
				Role:         models.OwnerRoleOwner,
				Email:        email,
				PasswordHash: string(hash),
				Documents:    []string{},
				CreatedAt:    time.Now().UTC(),
			}
			cols.Owners.Upsert(owner)
			fmt.Printf("created owner %s (%s)\n", owner.ID, owner.Email)
			return nil
		},
	}
}

func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return ""
	}
	return string(hash)
}
