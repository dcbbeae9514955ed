package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"landlord/internal/app"
	"landlord/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

type rpcFunc = func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer, svc *app.Service) error {
	if err := initializer.RegisterRpc(RpcDecide, rpcDecide(svc)); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcEvaluate, rpcEvaluate(svc))
}

// rpcDecide takes a judge log: {"requests": [...], "responses": [...]}.
func rpcDecide(svc *app.Service) rpcFunc {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		logger = logger.WithField("user_id", userID)

		in, err := app.ParseInput([]byte(payload))
		if err != nil {
			logger.Warn("Rejected decide payload: %v", err)
			return "", runtime.NewError("Invalid payload", codeInvalidArgument)
		}

		d, err := svc.Decide(ctx, logger, in)
		if err != nil {
			return "", toRuntimeError(logger, err)
		}
		return marshalStruct(decisionFields(d))
	}
}

// EvaluateRequest is the rpcEvaluate payload. MaxBid defaults to no earlier bid.
type EvaluateRequest struct {
	Hand   []domain.Card `json:"hand"`
	MaxBid *int          `json:"max_bid,omitempty"`
}

func rpcEvaluate(svc *app.Service) rpcFunc {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		var req EvaluateRequest
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", codeInvalidArgument)
		}
		maxBid := -1
		if req.MaxBid != nil {
			maxBid = *req.MaxBid
		}

		ev, err := svc.Evaluate(req.Hand, maxBid)
		if err != nil {
			return "", toRuntimeError(logger, err)
		}
		return marshalStruct(evaluationFields(ev))
	}
}

func toRuntimeError(logger runtime.Logger, err error) error {
	switch {
	case errors.Is(err, app.ErrEmptyRequests),
		errors.Is(err, app.ErrMalformedRequest),
		errors.Is(err, app.ErrUnknownLandlord),
		errors.Is(err, app.ErrEmptyHand):
		return runtime.NewError(err.Error(), codeInvalidArgument)
	}
	logger.Error("Decision failed: %v", err)
	return runtime.NewError("Internal error", codeInternal)
}
