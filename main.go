package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"shortlink-dashboard/apiclient"
	"shortlink-dashboard/config"
	"shortlink-dashboard/export"
	"shortlink-dashboard/logger"
	"shortlink-dashboard/model"
	"shortlink-dashboard/session"
	"shortlink-dashboard/store"
	"shortlink-dashboard/utils"
	"shortlink-dashboard/view"
)

// app bundles the wired components. State objects are constructor-injected
// and owned here, not package-level singletons.
type app struct {
	cfg     config.Config
	client  *apiclient.Client
	session *session.Manager
	store   *store.Store
	views   *view.Controller
}

func newApp() (*app, error) {
	cfg := config.MustLoadConfig()
	logger.Initialize(cfg.Logging)

	client := apiclient.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	storage, err := session.NewFileStorage(cfg.State.Dir)
	if err != nil {
		return nil, fmt.Errorf("open state dir %s: %w", cfg.State.Dir, err)
	}

	linkStore := store.New(client)
	return &app{
		cfg:     cfg,
		client:  client,
		session: session.NewManager(client, client, storage),
		store:   linkStore,
		views:   view.NewController(linkStore.HasSnapshot),
	}, nil
}

// requireSession restores the stored session and fails when none exists.
func (a *app) requireSession(ctx context.Context) (*model.Identity, error) {
	identity, err := a.session.Restore(ctx)
	if err != nil {
		return nil, err
	}
	if a.session.State() != session.StateAuthenticated {
		return nil, errors.New("not logged in (run: shortdash login)")
	}
	return identity, nil
}

func (a *app) shortURLFor(code string) string {
	for _, link := range a.store.Links() {
		if link.ShortCode == code && link.ShortURL != "" {
			return link.ShortURL
		}
	}
	return strings.TrimRight(a.cfg.API.BaseURL, "/") + "/" + code
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "shortdash",
		Short:         "Dashboard client for the URL shortener",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.linksCmd(),
		a.shortenCmd(),
		a.statsCmd(),
		a.qrCmd(),
		a.copyCmd(),
		a.notifyCmd(),
		a.healthCmd(),
		a.dashboardCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) registerCmd() *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.ValidatePassword(password, a.cfg.Password); err != nil {
				return fmt.Errorf("%w (requirements: %s)", err, utils.GetPasswordRequirements(a.cfg.Password))
			}
			identity, err := a.session.Register(cmd.Context(), email, password, name)
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s! You are now logged in.\n", identity.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the email local-part)")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := a.session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Welcome back, %s!\n", identity.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Erase the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.session.Logout()
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := a.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> (id %d)\n", identity.Name, identity.Email, identity.ID)
			return nil
		},
	}
}

func (a *app) linksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links",
		Short: "List your short links",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			links, err := a.store.LoadCollection(cmd.Context())
			if err != nil {
				return err
			}
			printLinks(links)
			return nil
		},
	}
}

func (a *app) shortenCmd() *cobra.Command {
	var code string
	var expiry uint
	cmd := &cobra.Command{
		Use:   "shorten <url>",
		Short: "Create a short link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			return a.createLink(cmd.Context(), args[0], code, expiry)
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "custom short code")
	cmd.Flags().UintVar(&expiry, "expiry", 0, "expiry in hours (default from config)")
	return cmd
}

func (a *app) createLink(ctx context.Context, rawURL, code string, expiry uint) error {
	if err := utils.ValidateURL(rawURL); err != nil {
		return err
	}
	if code != "" {
		if err := utils.ValidateSlug(code, a.cfg.Shorten.MinSlugLength, a.cfg.Shorten.MaxSlugLength); err != nil {
			return err
		}
	}
	if expiry == 0 {
		expiry = a.cfg.Shorten.DefaultExpiryHours
	}

	link, err := a.store.CreateLink(ctx, model.ShortenRequest{URL: rawURL, CustomShort: code, ExpiryHours: expiry})
	if err != nil {
		if code != "" && apiclient.IsValidation(err) {
			suggestions := utils.GenerateSlugSuggestions(code, a.cfg.Shorten.SlugSuggestions, nil)
			if len(suggestions) > 0 {
				return fmt.Errorf("%w (try: %s)", err, strings.Join(suggestions, ", "))
			}
		}
		return err
	}

	fmt.Printf("Created %s -> %s (expires %s)\n", link.ShortURL, link.OriginalURL, link.ExpiresAt.Format(time.RFC822))
	return nil
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <short-code>",
		Short: "Show click analytics for a short link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			snapshot, err := a.store.LoadAnalytics(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if snapshot == nil {
				// Superseded by a newer request; nothing to show.
				return nil
			}
			printSnapshot(snapshot)
			return nil
		},
	}
}

func (a *app) qrCmd() *cobra.Command {
	var out string
	var size int
	var levelName string
	cmd := &cobra.Command{
		Use:   "qr <short-code>",
		Short: "Export a QR image for a short link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if _, err := a.store.LoadCollection(cmd.Context()); err != nil {
				log.Warn().Err(err).Msg("Could not load links, using the configured base URL")
			}
			level, err := export.ParseRecoveryLevel(levelName)
			if err != nil {
				return err
			}
			if size == 0 {
				size = a.cfg.QR.Size
			}
			if out == "" {
				out = filepath.Join(a.cfg.QR.OutputDir, fmt.Sprintf("qrcode-%s.png", args[0]))
			}
			if err := export.SaveQRPNG(a.shortURLFor(args[0]), out, size, level); err != nil {
				return err
			}
			fmt.Println("Saved", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output PNG path")
	cmd.Flags().IntVar(&size, "size", 0, "image size in pixels")
	cmd.Flags().StringVar(&levelName, "level", "", "error correction level: low, medium, high, highest")
	return cmd
}

func (a *app) copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <short-code>",
		Short: "Copy a short URL to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if _, err := a.store.LoadCollection(cmd.Context()); err != nil {
				log.Warn().Err(err).Msg("Could not load links, using the configured base URL")
			}
			url := a.shortURLFor(args[0])
			if err := export.CopyText(url); err != nil {
				return err
			}
			fmt.Println("Copied", url)
			return nil
		},
	}
}

func (a *app) notifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Trigger expiry notification emails",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if err := a.client.SendExpirationNotifications(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Expiration notifications sent.")
			return nil
		},
	}
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.Health(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Backend is up.")
			return nil
		},
	}
}

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := a.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s!\n", identity.Name)
			if _, err := a.store.LoadCollection(cmd.Context()); err != nil {
				fmt.Println("Could not load links:", err)
			}
			a.runDashboard(cmd.Context())
			return nil
		},
	}
}

const dashboardHelp = `Commands:
  links                            show your short links
  create <url> [code] [hours]      create a short link
  stats <short-code>               load analytics and switch to the analytics tab
  qr <short-code> [file]           export a QR image
  copy <short-code>                copy the short URL to the clipboard
  logout                           end the session
  quit                             leave the dashboard`

// runDashboard is the read-eval loop behind the interactive mode. The view
// controller decides which tab is visible; commands route user intent to the
// session manager and resource store.
func (a *app) runDashboard(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		a.render()
		fmt.Printf("[%s] > ", a.views.Active())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "links", "list":
			if _, err := a.store.LoadCollection(ctx); err != nil {
				fmt.Println("Error:", err)
			}
			a.views.SwitchTo(view.ViewCollection)
		case "create":
			if len(fields) < 2 {
				a.views.SwitchTo(view.ViewCreate)
				continue
			}
			code := ""
			var expiry uint
			if len(fields) > 2 {
				code = fields[2]
			}
			if len(fields) > 3 {
				if hours, err := strconv.ParseUint(fields[3], 10, 32); err == nil {
					expiry = uint(hours)
				}
			}
			if err := a.createLink(ctx, fields[1], code, expiry); err != nil {
				// Creation never switches tabs by itself.
				fmt.Println("Error:", err)
			}
		case "stats":
			if len(fields) < 2 {
				fmt.Println("Usage: stats <short-code>")
				continue
			}
			snapshot, err := a.store.LoadAnalytics(ctx, fields[1])
			if err != nil {
				// Failed fetch: surface inline, leave the active view alone.
				fmt.Println("Error:", err)
				continue
			}
			if snapshot != nil {
				a.views.SwitchTo(view.ViewAnalytics)
			}
		case "qr":
			if len(fields) < 2 {
				fmt.Println("Usage: qr <short-code> [file]")
				continue
			}
			out := fmt.Sprintf("qrcode-%s.png", fields[1])
			if len(fields) > 2 {
				out = fields[2]
			}
			level, _ := export.ParseRecoveryLevel(a.cfg.QR.Level)
			if err := export.SaveQRPNG(a.shortURLFor(fields[1]), out, a.cfg.QR.Size, level); err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Println("Saved", out)
		case "copy":
			if len(fields) < 2 {
				fmt.Println("Usage: copy <short-code>")
				continue
			}
			url := a.shortURLFor(fields[1])
			if err := export.CopyText(url); err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Println("Copied", url)
		case "logout":
			a.session.Logout()
			fmt.Println("Logged out.")
			return
		case "quit", "exit":
			return
		case "help":
			fmt.Println(dashboardHelp)
		default:
			fmt.Println("Unknown command. Type 'help' for a list.")
		}
	}
}

func (a *app) render() {
	fmt.Println()
	switch a.views.Active() {
	case view.ViewCreate:
		fmt.Println("-- Create a short link: create <url> [code] [hours] --")
	case view.ViewAnalytics:
		if snapshot := a.store.Snapshot(); snapshot != nil {
			printSnapshot(snapshot)
		}
	default:
		printLinks(a.store.Links())
	}
}

func printLinks(links []model.ShortLink) {
	if len(links) == 0 {
		fmt.Println("No short links yet. Create one with: shorten <url>")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tSHORT URL\tORIGINAL\tCREATED\tEXPIRES")
	for _, link := range links {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			link.ShortCode,
			link.ShortURL,
			truncate(link.OriginalURL, 48),
			link.CreatedAt.Format("2006-01-02 15:04"),
			link.ExpiresAt.Format("2006-01-02 15:04"),
		)
	}
	w.Flush()
}

func printSnapshot(snapshot *model.AnalyticsSnapshot) {
	fmt.Printf("Analytics for %s\n", snapshot.ShortCode)
	fmt.Printf("  Total clicks: %d\n", snapshot.TotalClicks)
	if !snapshot.Link.CreatedAt.IsZero() {
		fmt.Printf("  Created:      %s\n", snapshot.Link.CreatedAt.Format(time.RFC822))
		fmt.Printf("  Expires:      %s\n", snapshot.Link.ExpiresAt.Format(time.RFC822))
	}
	if len(snapshot.ClicksByDate) > 0 {
		fmt.Println("  Clicks by date:")
		for _, point := range snapshot.ClicksByDate {
			fmt.Printf("    %s  %d\n", point.Date, point.Count)
		}
	}
	if len(snapshot.TopCountries) > 0 {
		fmt.Println("  Top countries:")
		for _, row := range snapshot.TopCountries {
			country := row.Country
			if country == "" {
				country = "Unknown"
			}
			fmt.Printf("    %-16s %d\n", country, row.Count)
		}
	}
	if len(snapshot.DeviceStats) > 0 {
		fmt.Println("  Devices:")
		for _, row := range snapshot.DeviceStats {
			fmt.Printf("    %-16s %d\n", row.DeviceType, row.Count)
		}
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
