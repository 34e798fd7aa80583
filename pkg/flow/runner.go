package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fitlink-qa/reportflow/pkg/backend"
	"github.com/fitlink-qa/reportflow/pkg/errors"
	"github.com/fitlink-qa/reportflow/pkg/identity"
	"github.com/fitlink-qa/reportflow/pkg/output"
)

// Backend is the subset of the API client the runner drives.
type Backend interface {
	Register(ctx context.Context, id identity.Identity) (*backend.RawResult, error)
	Login(ctx context.Context, email, password string) (*backend.LoginResult, error)
	Report(ctx context.Context, token, targetID string) (*backend.RawResult, error)
	Health(ctx context.Context) error
}

// Options configures one run.
type Options struct {
	TargetID         string
	Identities       []identity.Identity
	PropagationDelay time.Duration
	SkipHealth       bool
}

// credential is one bearer token paired with the identity that produced it.
// Credentials are collected append-only, in registration order, and each one
// is spent on exactly one report call.
type credential struct {
	email string
	token string
}

// Runner executes the register, wait, login, report sequence against a
// backend. Execution is fully sequential; there is no shared state beyond
// the ordered credential list built within Run.
type Runner struct {
	backend Backend
	printer *output.Printer
	logger  zerolog.Logger
	opts    Options

	state State

	// sleep is swappable so tests do not wait out the propagation delay.
	sleep func(ctx context.Context, d time.Duration)
}

// NewRunner creates a runner for the given backend and options.
func NewRunner(b Backend, printer *output.Printer, logger zerolog.Logger, opts Options) *Runner {
	return &Runner{
		backend: b,
		printer: printer,
		logger:  logger,
		opts:    opts,
		state:   StateStart,
		sleep:   sleepCtx,
	}
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	return r.state
}

// Run drives all phases in order. Registration and report failures are
// printed and skipped; a login that yields no bearer token aborts the run
// immediately. The summary is returned even on abort so it can still be
// written out.
func (r *Runner) Run(ctx context.Context) (*output.RunSummary, error) {
	started := time.Now()
	summary := &output.RunSummary{
		RunID:     uuid.NewString(),
		TargetID:  r.opts.TargetID,
		StartedAt: started,
		Outcomes:  make([]output.IdentityOutcome, len(r.opts.Identities)),
	}
	for i, id := range r.opts.Identities {
		summary.Outcomes[i].Email = id.Email
	}

	if c, ok := r.backend.(*backend.Client); ok {
		summary.BaseURL = c.BaseURL()
	}

	runErr := r.run(ctx, summary)

	summary.Duration = time.Since(started)
	summary.State = r.state.String()
	return summary, runErr
}

func (r *Runner) run(ctx context.Context, summary *output.RunSummary) error {
	r.printer.Infof("reportflow run %s: %d reporters against target %s",
		summary.RunID, len(r.opts.Identities), r.opts.TargetID)

	if !r.opts.SkipHealth {
		if err := r.backend.Health(ctx); err != nil {
			// Not fatal: the registration phase itself will show whether
			// the backend is reachable.
			r.printer.Infof("warning: backend health check failed: %v", err)
			r.logger.Warn().Err(err).Msg("health preflight failed")
		}
	}

	r.transition(StateRegistering)
	r.printer.Banner("registering reporters")
	for i, id := range r.opts.Identities {
		res, err := r.backend.Register(ctx, id)
		if err != nil {
			// Duplicate accounts from earlier runs land here too; the
			// login phase decides whether the account is usable.
			r.printer.Infof("register %s failed: %v", id.Email, err)
			continue
		}
		summary.Outcomes[i].RegisterStatus = res.StatusCode
		r.printer.Result("register "+id.Email, res.StatusCode, res.Body)
	}

	r.transition(StateWaiting)
	r.printer.Banner("waiting for account propagation")
	r.printer.Infof("sleeping %s for asynchronous account activation", r.opts.PropagationDelay)
	r.sleep(ctx, r.opts.PropagationDelay)

	// One loop per reporter: obtain the bearer token, spend it on one
	// report call, discard it. A credential never outlives its report, and
	// a missing token aborts before the next reporter is touched, so the
	// number of report calls always equals the number of tokens obtained.
	r.printer.Banner("authenticating and reporting")
	credentials := make([]credential, 0, len(r.opts.Identities))
	for i, id := range r.opts.Identities {
		r.transition(StateAuthenticating)
		res, err := r.backend.Login(ctx, id.Email, id.Password)
		if err != nil {
			r.transition(StateAborted)
			return errors.AuthError(fmt.Sprintf("login failed for %s", id.Email), err)
		}

		summary.Outcomes[i].LoginStatus = res.StatusCode
		r.printer.Result("login "+id.Email, res.StatusCode, res.Body)

		token := res.Token()
		if token == "" {
			r.transition(StateAborted)
			return errors.AuthError(
				fmt.Sprintf("login response for %s has no session.access_token", id.Email), nil)
		}

		summary.Outcomes[i].TokenObtained = true
		cred := credential{email: id.Email, token: token}
		credentials = append(credentials, cred)
		r.logger.Debug().Str("email", id.Email).Msg("bearer token obtained")

		r.transition(StateReporting)
		report, err := r.backend.Report(ctx, cred.token, r.opts.TargetID)
		if err != nil {
			r.printer.Infof("report by %s failed: %v", cred.email, err)
			continue
		}
		summary.Outcomes[i].ReportStatus = report.StatusCode
		r.printer.Result("report by "+cred.email, report.StatusCode, report.Body)
	}

	r.transition(StateDone)
	r.logger.Debug().Int("credentials_spent", len(credentials)).Msg("flow complete")
	r.printer.Reminder(r.opts.TargetID)
	return nil
}

func (r *Runner) transition(next State) {
	r.logger.Debug().Stringer("from", r.state).Stringer("to", next).Msg("phase transition")
	r.state = next
}

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
