// trackctl is a small terminal front end over the tracker API. The only
// state it keeps locally is the active user name.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"study-tracker/internal/client"
	"study-tracker/internal/model"

	"github.com/spf13/cobra"
)

var apiBase string

func main() {
	root := &cobra.Command{
		Use:           "trackctl",
		Short:         "study tracker command line client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&apiBase, "api", "http://localhost:3000", "tracker API base URL")

	root.AddCommand(loginCmd(), logoutCmd(), whoamiCmd(), userCmd(),
		subjectsCmd(), entriesCmd(), logsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <name>",
		Short: "set the active user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := saveSession(args[0]); err != nil {
				return err
			}
			// Provision the account up front so later fetches see it.
			c := client.New(apiBase)
			c.Login(args[0])
			if _, err := c.FetchUser(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("logged in as", args[0])
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "clear the active user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearSession()
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "print the active user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := loadSession()
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		},
	}
}

func userCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user",
		Short: "show the full user record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			u, err := c.FetchUser(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d subjects, %d dailylogs\n", u.Name, len(u.Subjects), len(u.DailyLogs))
			return nil
		},
	}
}

func subjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "list subjects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := subjectView(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range v.Subjects() {
				fmt.Printf("%s  %s (%d entries)\n", s.ID, s.Name, len(s.Entries))
			}
			return nil
		},
	}

	var desc string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "add a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := subjectView(cmd.Context())
			if err != nil {
				return err
			}
			s, err := v.AddSubject(cmd.Context(), args[0], desc)
			if err != nil {
				return err
			}
			fmt.Println("added subject", s.ID)
			return syncResult(v.SyncErr())
		},
	}
	add.Flags().StringVarP(&desc, "description", "d", "", "subject description")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "delete a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := subjectView(cmd.Context())
			if err != nil {
				return err
			}
			v.DeleteSubject(cmd.Context(), args[0])
			return syncResult(v.SyncErr())
		},
	}

	cmd.AddCommand(add, rm)
	return cmd
}

func entriesCmd() *cobra.Command {
	var subjectID string
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "list entries of a subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := subjectView(cmd.Context())
			if err != nil {
				return err
			}
			sel, err := selectSubject(v, subjectID)
			if err != nil {
				return err
			}
			for _, e := range sel.Entries {
				fmt.Printf("%s  %s  %s\n", e.ID, e.Date, e.Description)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&subjectID, "subject", "s", "", "subject id (default: first subject)")

	add := &cobra.Command{
		Use:   "add <description>",
		Short: "add an entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := subjectView(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := selectSubject(v, subjectID); err != nil {
				return err
			}
			e, err := v.AddEntry(cmd.Context(), strings.Join(args, " "), nil)
			if err != nil {
				return err
			}
			fmt.Println("added entry", e.ID)
			return syncResult(v.SyncErr())
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := subjectView(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := selectSubject(v, subjectID); err != nil {
				return err
			}
			if err := v.DeleteEntry(cmd.Context(), args[0]); err != nil {
				return err
			}
			return syncResult(v.SyncErr())
		},
	}

	cmd.AddCommand(add, rm)
	return cmd
}

func logsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "list daily log dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := dailyLogView(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range v.Dates() {
				filled := 0
				for _, slot := range d.Logs {
					if slot != "" {
						filled++
					}
				}
				fmt.Printf("%s  %s (%d/%d hours)\n", d.ID, d.Date, filled, model.HoursPerDay)
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <date>",
		Short: "add a date (selects the existing one if present)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := dailyLogView(cmd.Context())
			if err != nil {
				return err
			}
			d := v.AddDate(cmd.Context(), args[0])
			fmt.Println("selected", d.Date)
			return syncResult(v.SyncErr())
		},
	}

	set := &cobra.Command{
		Use:   "set <date> <hour> <text>",
		Short: "set the text for one hour slot",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			hour, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid hour %q", args[1])
			}
			v, err := dailyLogView(cmd.Context())
			if err != nil {
				return err
			}
			v.AddDate(cmd.Context(), args[0])
			if err := v.UpdateLog(cmd.Context(), hour, strings.Join(args[2:], " ")); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", args[0], model.HourRange(hour))
			return syncResult(v.SyncErr())
		},
	}

	show := &cobra.Command{
		Use:   "show <date>",
		Short: "print the 24 hour slots of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := dailyLogView(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range v.Dates() {
				if d.Date != args[0] {
					continue
				}
				for h, text := range model.NormalizeSlots(d.Logs) {
					if text != "" {
						fmt.Printf("%s  %s\n", model.HourRange(h), text)
					}
				}
				return nil
			}
			return fmt.Errorf("no log for %s", args[0])
		},
	}

	cmd.AddCommand(add, set, show)
	return cmd
}

func newClient() (*client.Client, error) {
	name, err := loadSession()
	if err != nil {
		return nil, err
	}
	c := client.New(apiBase)
	c.Login(name)
	return c, nil
}

func subjectView(ctx context.Context) (*client.SubjectView, error) {
	c, err := newClient()
	if err != nil {
		return nil, err
	}
	v := client.NewSubjectView(c)
	if err := v.Hydrate(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

func dailyLogView(ctx context.Context) (*client.DailyLogView, error) {
	c, err := newClient()
	if err != nil {
		return nil, err
	}
	v := client.NewDailyLogView(c)
	if err := v.Hydrate(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

func selectSubject(v *client.SubjectView, id string) (*model.Subject, error) {
	if id != "" && !v.Select(id) {
		return nil, fmt.Errorf("no subject with id %s", id)
	}
	sel := v.Selected()
	if sel == nil {
		return nil, errors.New("no subjects yet; add one first")
	}
	return sel, nil
}

func syncResult(err error) error {
	if err != nil {
		return fmt.Errorf("saved locally but sync failed: %w", err)
	}
	return nil
}

func sessionFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "study-tracker", "user"), nil
}

func saveSession(name string) error {
	path, err := sessionFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(name+"\n"), 0o644)
}

func loadSession() (string, error) {
	path, err := sessionFile()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.New("not logged in; run: trackctl login <name>")
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", errors.New("not logged in; run: trackctl login <name>")
	}
	return name, nil
}

func clearSession() error {
	path, err := sessionFile()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
