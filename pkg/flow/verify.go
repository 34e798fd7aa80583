package flow

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/fitlink-qa/reportflow/pkg/errors"
)

// TargetState is the interpreted moderation state of the target account.
type TargetState int

const (
	TargetUnknown TargetState = iota
	TargetActive
	TargetBlocked
)

func (s TargetState) String() string {
	switch s {
	case TargetActive:
		return "active"
	case TargetBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// VerifyResult is the outcome of one verification probe.
type VerifyResult struct {
	State      TargetState
	StatusCode int
	// Detail is the backend's own wording for a rejected login, pulled from
	// the service-defined error body.
	Detail string
	Body   []byte
}

// VerifyTarget probes the target's moderation state by attempting to log in
// as the target. The backend rejects logins for blocked accounts with a 403
// and a block notice, so the login outcome doubles as a state probe:
//
//	403                  -> blocked
//	2xx with a token     -> active (the report threshold has not fired)
//	anything else        -> unknown (wrong credentials, backend trouble)
func VerifyTarget(ctx context.Context, b Backend, email, password string) (*VerifyResult, error) {
	res, err := b.Login(ctx, email, password)
	if err != nil {
		return nil, errors.BackendError(fmt.Sprintf("verify login failed for %s", email), err)
	}

	result := &VerifyResult{
		State:      TargetUnknown,
		StatusCode: res.StatusCode,
		Detail:     gjson.GetBytes(res.Body, "detail").String(),
		Body:       res.Body,
	}

	switch {
	case res.StatusCode == 403:
		result.State = TargetBlocked
	case res.StatusCode >= 200 && res.StatusCode < 300 && res.Token() != "":
		result.State = TargetActive
	}

	return result, nil
}
