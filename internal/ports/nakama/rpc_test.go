package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"landlord/internal/app"
	"landlord/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return map[string]interface{}{}
}

// fakeInitializer records registered RPCs; every other method panics.
type fakeInitializer struct {
	runtime.Initializer
	rpcs map[string]rpcFunc
}

func (f *fakeInitializer) RegisterRpc(id string, fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)) error {
	f.rpcs[id] = fn
	return nil
}

func newTestService() *app.Service {
	return app.NewService(config.DefaultEngineConfig())
}

func wantCode(t *testing.T, err error, code int) {
	t.Helper()
	var rtErr *runtime.Error
	if !errors.As(err, &rtErr) {
		t.Fatalf("error = %v, want runtime error", err)
	}
	if rtErr.Code != code {
		t.Fatalf("error code = %d, want %d", rtErr.Code, code)
	}
}

func TestInitModule_RegistersRPCs(t *testing.T) {
	initializer := &fakeInitializer{rpcs: map[string]rpcFunc{}}
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_ENV, map[string]string{})

	if err := InitModule(ctx, noopLogger{}, nil, nil, initializer); err != nil {
		t.Fatalf("InitModule error: %v", err)
	}
	for _, id := range []string{RpcDecide, RpcEvaluate} {
		if initializer.rpcs[id] == nil {
			t.Fatalf("rpc %q not registered", id)
		}
	}
}

func TestRpcDecide_Bid(t *testing.T) {
	payload := `{"requests":[{"own":[35,36,37,38,39,40,41,42,43,44,45,46,47,48,49,50,51],"bid":[]}],"responses":[]}`

	raw, err := rpcDecide(newTestService())(context.Background(), noopLogger{}, nil, nil, payload)
	if err != nil {
		t.Fatalf("rpcDecide error: %v", err)
	}

	var resp struct {
		DecisionID string  `json:"decision_id"`
		Stage      string  `json:"stage"`
		Response   float64 `json:"response"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Stage != "bidding" || resp.Response != 3 || resp.DecisionID == "" {
		t.Fatalf("response = %+v, want a bid of 3", resp)
	}
}

func TestRpcDecide_Play(t *testing.T) {
	payload := `{"requests":[{"own":[0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16],"bid":[]},` +
		`{"history":[[],[]],"publiccard":[51,52,53],"landlord":0,"pos":0,"finalbid":3}],"responses":[3]}`

	raw, err := rpcDecide(newTestService())(context.Background(), noopLogger{}, nil, nil, payload)
	if err != nil {
		t.Fatalf("rpcDecide error: %v", err)
	}

	var resp struct {
		Stage    string    `json:"stage"`
		Response []float64 `json:"response"`
		Type     string    `json:"type"`
		Status   float64   `json:"status"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Stage != "playing" || len(resp.Response) == 0 || resp.Status != 0 {
		t.Fatalf("response = %+v, want a lead by the landlord", resp)
	}
}

func TestRpcDecide_InvalidPayload(t *testing.T) {
	rpc := rpcDecide(newTestService())

	_, err := rpc(context.Background(), noopLogger{}, nil, nil, `not json`)
	wantCode(t, err, codeInvalidArgument)

	_, err = rpc(context.Background(), noopLogger{}, nil, nil, `{"requests":[{"own":[0]},{"history":[[],[]]}]}`)
	wantCode(t, err, codeInvalidArgument)
}

func TestRpcEvaluate(t *testing.T) {
	rpc := rpcEvaluate(newTestService())

	raw, err := rpc(context.Background(), noopLogger{}, nil, nil, `{"hand":[52,53]}`)
	if err != nil {
		t.Fatalf("rpcEvaluate error: %v", err)
	}
	var resp struct {
		Score   float64 `json:"score"`
		Bid     float64 `json:"bid"`
		Profile struct {
			Rocket bool `json:"rocket"`
		} `json:"profile"`
		Components []struct {
			Type string `json:"type"`
		} `json:"components"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Score != 15 || resp.Bid != 3 || !resp.Profile.Rocket {
		t.Fatalf("response = %+v, want the rocket valued at 15", resp)
	}
	if len(resp.Components) != 1 || resp.Components[0].Type != "rocket" {
		t.Fatalf("components = %+v, want one rocket", resp.Components)
	}

	_, err = rpc(context.Background(), noopLogger{}, nil, nil, `{"hand":[]}`)
	wantCode(t, err, codeInvalidArgument)

	_, err = rpc(context.Background(), noopLogger{}, nil, nil, `{"hand":[0,0,0,0,0]}`)
	wantCode(t, err, codeInvalidArgument)
}
