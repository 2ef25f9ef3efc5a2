package scenario

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/danielholmes839/altart-e2e/internal/altart"
)

// SessionFactory opens a fresh browser page. The returned func releases it.
type SessionFactory func() (altart.Driver, func() error, error)

// PlaywrightSessions launches a new playwright session per scenario.
func PlaywrightSessions(opts altart.SessionOptions) SessionFactory {
	return func() (altart.Driver, func() error, error) {
		session, err := altart.Launch(opts)
		if err != nil {
			return nil, nil, err
		}
		return session.Driver(), session.Close, nil
	}
}

type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

func (r Result) Passed() bool {
	return r.Err == nil
}

type Report struct {
	Results []Result
}

func (r Report) Failed() int {
	failed := 0
	for _, result := range r.Results {
		if !result.Passed() {
			failed++
		}
	}
	return failed
}

type Runner struct {
	Sessions SessionFactory
	Logger   *slog.Logger
}

func (runner *Runner) runOne(scenario Scenario) error {
	driver, release, err := runner.Sessions()
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	defer func() {
		closeErr := release()
		if closeErr != nil {
			runner.Logger.Error("failed to close session", "scenario", scenario.Name, "err", closeErr)
		}
	}()

	return scenario.Run(driver, runner.Logger.With("scenario", scenario.Name))
}

// Run executes every scenario in order. A failing scenario does not stop the
// ones after it.
func (runner *Runner) Run(scenarios []Scenario) Report {
	if runner.Logger == nil {
		runner.Logger = slog.Default()
	}

	report := Report{}

	for _, scenario := range scenarios {
		runner.Logger.Info("running scenario", "scenario", scenario.Name)

		start := time.Now()
		err := runner.runOne(scenario)
		dur := time.Since(start)

		if err != nil {
			runner.Logger.Error("scenario failed", "scenario", scenario.Name, "dur", dur.String(), "err", err)
		} else {
			runner.Logger.Info("scenario passed", "scenario", scenario.Name, "dur", dur.String())
		}

		report.Results = append(report.Results, Result{
			Name:     scenario.Name,
			Err:      err,
			Duration: dur,
		})
	}

	return report
}
