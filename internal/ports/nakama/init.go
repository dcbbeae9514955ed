package nakama

import (
	"context"
	"database/sql"

	"landlord/internal/app"
	"landlord/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule loads the engine config and wires the decision RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if path, ok := env[EnvConfigPath]; ok && path != "" {
		if err := config.LoadEngineConfig(path); err != nil {
			logger.Error("Failed to load engine config %s: %v", path, err)
			return err
		}
	}

	svc := app.NewService(config.GetEngineConfig())
	if err := RegisterRPCs(initializer, svc); err != nil {
		return err
	}

	logger.Info("Landlord Go module loaded.")
	return nil
}
