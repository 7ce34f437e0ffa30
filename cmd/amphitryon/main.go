// Copyright The Amphitryon Authors.
// SPDX-License-Identifier: MIT

// Package main is the Amphitryon agenda client. It signs in against the
// Amphitryon service, keeps the meeting caches synchronized, and renders the
// upcoming agenda as text or as an iCalendar file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"golang.org/x/oauth2"

	"github.com/amphitryon/amphitryon-client/internal/agenda"
	"github.com/amphitryon/amphitryon-client/internal/config"
	"github.com/amphitryon/amphitryon-client/internal/domain/models"
	"github.com/amphitryon/amphitryon-client/internal/gateway"
	"github.com/amphitryon/amphitryon-client/internal/logging"
	"github.com/amphitryon/amphitryon-client/internal/refresh"
	"github.com/amphitryon/amphitryon-client/internal/schedule"
	"github.com/amphitryon/amphitryon-client/internal/store"
	"github.com/amphitryon/amphitryon-client/pkg/utils"
)

func main() {
	configPath := flag.String("config", "amphitryon.yaml", "path to the YAML configuration file")
	asHost := flag.Bool("host", false, "sign in as a location host instead of a student")
	locationID := flag.String("location", "", "print this location's details and opening hours, then exit")
	searchName := flag.String("search", "", "search meetings by name over the agenda window, then exit")
	icsPath := flag.String("ics", "", "write the agenda window to this iCalendar file and exit")
	watch := flag.Bool("watch", false, "keep running and regenerate the agenda on the refresh schedule")
	flag.Parse()

	logging.InitStructureLogConfig()

	if err := run(*configPath, *asHost, *locationID, *searchName, *icsPath, *watch); err != nil {
		slog.With(logging.ErrKey, err).Error("amphitryon client failed")
		os.Exit(1)
	}
}

func run(configPath string, asHost bool, locationID, searchName, icsPath string, watch bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("no base URL configured: set base_url in %s or AMPHITRYON_BASE_URL", configPath)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	client := gateway.NewClient(gateway.Config{
		BaseURL:       cfg.BaseURL,
		SessionHeader: cfg.SessionHeader,
		TokenSource:   identityTokenSource(),
		Timeout:       cfg.Timeout.Std(),
		MaxRetries:    cfg.MaxRetries,
	})
	alerter := &consoleAlerter{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions := store.NewSessionStore(client, alerter, cfg.SessionHeader)
	sessions.Connect(ctx)
	if !sessions.IsLoggedIn() {
		return fmt.Errorf("sign-in failed")
	}
	defer sessions.SignOut()

	now := time.Now().In(loc)

	if locationID != "" {
		return printLocation(ctx, store.NewStudentStore(client, alerter), locationID, now)
	}
	if searchName != "" {
		return printSearch(ctx, store.NewStudentStore(client, alerter), searchName, now)
	}

	var agendaStore interface {
		LoadUserData(ctx context.Context, from time.Time)
		RegenerateItems()
		Items() agenda.ItemsMap
	}
	if asHost {
		agendaStore = store.NewHostStore(client, alerter)
	} else {
		agendaStore = store.NewStudentStore(client, alerter)
	}

	agendaStore.LoadUserData(ctx, now)

	if icsPath != "" {
		return writeICSFile(agendaStore.Items(), icsPath)
	}

	printAgenda(agendaStore.Items())

	if !watch {
		return nil
	}

	scheduler, err := refresh.NewScheduler(cfg.RefreshSchedule, agendaStore)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	sig := <-done
	slog.Info("shutting down", "signal", sig.String())
	return nil
}

// identityTokenSource builds the token source presented on sign-in. Without a
// token in the environment the sign-in call goes out unauthenticated and the
// service decides.
func identityTokenSource() oauth2.TokenSource {
	token := os.Getenv("AMPHITRYON_IDENTITY_TOKEN")
	if token == "" {
		return nil
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
}

func writeICSFile(items agenda.ItemsMap, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := agenda.WriteICS(items, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// printLocation shows one location with its weekly opening hours expanded
// into concrete intervals over the agenda window.
func printLocation(ctx context.Context, students *store.StudentStore, locationID string, now time.Time) error {
	students.LoadLocationDetails(ctx, locationID)
	location, ok := students.LocationToDisplay().Value()
	if !ok {
		return fmt.Errorf("location %s could not be loaded", locationID)
	}

	fmt.Printf("%s - %s (capacité %d)\n", location.Name, location.HostName, location.NbPeople)
	if location.Description != "" {
		fmt.Println(location.Description)
	}

	from := agenda.StartOfDay(now)
	to := agenda.EndOfDay(now.AddDate(0, 0, agenda.WindowDays))
	intervals, err := schedule.ExpandOpeningHours(location, from, to)
	if err != nil {
		return fmt.Errorf("expanding opening hours: %w", err)
	}
	fmt.Println("Horaires d'ouverture :")
	if len(intervals) == 0 {
		fmt.Println("  (fermé sur la période)")
	}
	for _, interval := range intervals {
		fmt.Printf("  %s  %s - %s\n",
			interval.Start.Format("2006-01-02"),
			interval.Start.Format("15:04"),
			interval.End.Format("15:04"),
		)
	}
	return nil
}

// printSearch runs a filtered meeting search bounded to the agenda window.
func printSearch(ctx context.Context, students *store.StudentStore, name string, now time.Time) error {
	filter := models.Filter{
		Name:      utils.StringPtr(name),
		StartDate: utils.TimePtr(agenda.StartOfDay(now)),
		EndDate:   utils.TimePtr(agenda.EndOfDay(now.AddDate(0, 0, agenda.WindowDays))),
	}
	students.SearchWithFilter(ctx, filter)

	results := students.SearchResults()
	if len(results) == 0 {
		fmt.Println("Aucune réunion trouvée")
		return nil
	}
	for _, m := range results {
		fmt.Printf("%s  %s - %s  %s @ %s\n",
			m.StartDate.Format("2006-01-02"),
			m.StartDate.Format("15:04"),
			m.EndDate.Format("15:04"),
			m.Name,
			m.LocationName,
		)
	}
	return nil
}

func printAgenda(items agenda.ItemsMap) {
	days := make([]string, 0, len(items))
	for day := range items {
		days = append(days, string(day))
	}
	sort.Strings(days)

	for _, day := range days {
		fmt.Printf("%s\n", day)
		bucket := items[agenda.DayKey(day)]
		if len(bucket) == 0 {
			fmt.Println("  (aucune réunion)")
			continue
		}
		for _, item := range bucket {
			m := item.Meeting
			fmt.Printf("  %s - %s  %s @ %s\n",
				m.StartDate.Format("15:04"),
				m.EndDate.Format("15:04"),
				m.Name,
				m.LocationName,
			)
		}
	}
}

// consoleAlerter surfaces store notifications on the terminal, standing in
// for the dialog layer of a graphical client.
type consoleAlerter struct{}

func (a *consoleAlerter) Alert(title, message string) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", title, message)
}
