package api

import (
	"context"

	"agencydesk/internal/agent"
)

type ctxKey string

const ctxKeyAgent ctxKey = "agent"

func WithAgent(ctx context.Context, a *agent.Agent) context.Context {
	return context.WithValue(ctx, ctxKeyAgent, a)
}

func AgentFromContext(ctx context.Context) *agent.Agent {
	v := ctx.Value(ctxKeyAgent)
	if v == nil {
		return nil
	}
	a, _ := v.(*agent.Agent)
	return a
}
