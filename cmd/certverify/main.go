package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/Layr-Labs/eigenda-cert-verifier/core"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/cert"
	"github.com/Layr-Labs/eigenda-cert-verifier/core/srs"
)

const (
	certFlagName          = "cert"
	storageFlagName       = "storage"
	payloadFlagName       = "payload"
	srsFlagName           = "srs"
	currentBlockFlagName  = "current-block"
	recencyWindowFlagName = "recency-window"
)

// certverify is local glue for humans to drive the deterministic
// verification core against on-disk fixtures; it is explicitly not part of
// the core itself, which never touches the filesystem.
func main() {
	app := &cli.App{
		Name:  "certverify",
		Usage: "verify an EigenDA certificate and its encoded payload against a storage snapshot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     certFlagName,
				Usage:    "path to a JSON-encoded cert.StandardCommitment",
				Required: true,
			},
			&cli.StringFlag{
				Name:     storageFlagName,
				Usage:    "path to a JSON-encoded cert.Storage snapshot",
				Required: true,
			},
			&cli.StringFlag{
				Name:     payloadFlagName,
				Usage:    "path to the raw encoded payload bytes",
				Required: true,
			},
			&cli.StringFlag{
				Name:     srsFlagName,
				Usage:    "path to the trusted-setup G1 point file",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:     currentBlockFlagName,
				Usage:    "the caller's view of the current block number",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  recencyWindowFlagName,
				Usage: "maximum number of blocks the reference block may lag behind current-block",
				Value: 300,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Crit("certverify failed", "err", err)
	}
}

func run(c *cli.Context) error {
	logger := log.NewLogger(log.NewTerminalHandler(os.Stderr, true))

	commitment, err := loadJSON[cert.StandardCommitment](c.String(certFlagName))
	if err != nil {
		return fmt.Errorf("load cert: %w", err)
	}
	storage, err := loadJSON[cert.Storage](c.String(storageFlagName))
	if err != nil {
		return fmt.Errorf("load storage: %w", err)
	}
	encodedPayload, err := os.ReadFile(c.String(payloadFlagName))
	if err != nil {
		return fmt.Errorf("load payload: %w", err)
	}

	srsFile, err := os.Open(c.String(srsFlagName))
	if err != nil {
		return fmt.Errorf("open srs: %w", err)
	}
	defer srsFile.Close()
	s, err := srs.Load(srsFile)
	if err != nil {
		return fmt.Errorf("load srs: %w", err)
	}

	decoded, err := core.VerifyBlobCert(
		commitment,
		storage,
		encodedPayload,
		c.Uint64(currentBlockFlagName),
		c.Uint64(recencyWindowFlagName),
		s,
	)
	if err != nil {
		logger.Error("certificate verification failed", "err", err)
		return err
	}

	logger.Info("certificate verified", "payload_len", len(decoded))
	fmt.Println(string(decoded))
	return nil
}

func loadJSON[T any](path string) (*T, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
