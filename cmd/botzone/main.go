// Command botzone answers one judge request: it reads the match log as a
// single JSON line on stdin and writes the bid or play as one JSON line on stdout.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"landlord/internal/app"
	"landlord/internal/config"
	"landlord/internal/logging"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/joho/godotenv"
)

const maxLineBytes = 4 << 20

func main() {
	_ = godotenv.Load()

	if path := os.Getenv("LANDLORD_CONFIG"); path != "" {
		if err := config.LoadEngineConfig(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	cfg := config.GetEngineConfig()
	level := cfg.LogLevel
	if v := os.Getenv("LANDLORD_LOG_LEVEL"); v != "" {
		level = v
	}
	logger := logging.New(os.Stderr, level)

	if err := run(context.Background(), logger, app.NewService(cfg), os.Stdin, os.Stdout); err != nil {
		logger.Error("botzone: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger runtime.Logger, svc *app.Service, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return err
		}
		return io.ErrUnexpectedEOF
	}

	input, err := app.ParseInput(sc.Bytes())
	if err != nil {
		return err
	}
	d, err := svc.Decide(ctx, logger, input)
	if err != nil {
		return err
	}
	return json.NewEncoder(out).Encode(d.Output())
}
