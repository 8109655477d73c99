package main

import (
	"context"
	"fmt"
	"io"

	"petwelfare/config"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/domain/repository"
	"petwelfare/internal/domain/service"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// certFile is one file referenced by an issued adoption certificate.
type certFile struct {
	Number string
	Kind   string
	URL    string
	Status string
}

const (
	certOK      = "OK"
	certMissing = "MISSING"
	certForeign = "UNMAPPED"
)

func newCheckCertsCommand() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "check-certs",
		Short: "Verify that every issued adoption certificate file exists in storage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configure := func(cfg *config.Config) {
				if root != "" {
					cfg.Storage.Root = root
				}
			}

			return withDeps(cmd.Context(), configure, func(ctx context.Context, d deps) error {
				files, err := checkCertificates(ctx, d.TxManager, d.Storage)
				if err != nil {
					return err
				}

				if missing := printCertReport(cmd.OutOrStdout(), files); missing > 0 {
					return errors.Errorf("%d certificate file(s) missing", missing)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "storage root to check (default from config)")

	return cmd
}

// checkCertificates lists completed adoptions and checks each certificate and QR file.
func checkCertificates(ctx context.Context, txManager repository.TransactionManager, storage service.FileStorage) ([]certFile, error) {
	var apps []*entity.AdoptionApplication
	err := txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		apps, err = repos.AdoptionApplicationRepo().ListWithCertificates(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list certificates")
	}

	files := make([]certFile, 0, len(apps)*2)
	for _, app := range apps {
		cert := app.Certificate
		if cert == nil {
			continue
		}

		refs := []certFile{
			{Number: cert.Number, Kind: "certificate", URL: cert.URL},
			{Number: cert.Number, Kind: "qr", URL: cert.QRURL},
		}
		for _, ref := range refs {
			if ref.URL == "" {
				continue
			}

			status, err := fileStatus(ctx, storage, ref.URL)
			if err != nil {
				return nil, err
			}

			ref.Status = status
			files = append(files, ref)
		}
	}

	return files, nil
}

func fileStatus(ctx context.Context, storage service.FileStorage, url string) (string, error) {
	key, ok := storage.KeyFromURL(url)
	if !ok {
		return certForeign, nil
	}

	exists, err := storage.Exists(ctx, key)
	if err != nil {
		return "", errors.Wrapf(err, "failed to check %s", key)
	}
	if !exists {
		return certMissing, nil
	}

	return certOK, nil
}

// printCertReport writes one coloured line per file and returns how many are missing.
func printCertReport(w io.Writer, files []certFile) int {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	missing := 0
	for _, f := range files {
		switch f.Status {
		case certOK:
			green.Fprintf(w, "%-8s", f.Status)
		case certMissing:
			missing++
			red.Fprintf(w, "%-8s", f.Status)
		default:
			yellow.Fprintf(w, "%-8s", f.Status)
		}
		fmt.Fprintf(w, " %s %-11s %s\n", f.Number, f.Kind, f.URL)
	}

	fmt.Fprintf(w, "\n%d file(s) checked, %d missing\n", len(files), missing)

	return missing
}
