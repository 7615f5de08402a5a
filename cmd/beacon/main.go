package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"beacon/config"
	"beacon/internal/domain/service"
	"beacon/internal/infra/auth"
	logs "beacon/internal/infra/log"
	"beacon/internal/infra/qrcode"
	"beacon/internal/infra/rest"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"go.uber.org/fx"
)

// Supported subcommands:
// - send:   Request a sign-in link email for an address
// - signin: Redeem a sign-in link and print the resolved session
// - qr:     Render a sign-in link as a PNG QR code

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Invoke(run),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenInspector,
			rest.NewTransport,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
		),
	)
}

type runParams struct {
	fx.In
	fx.Shutdowner

	Auth   usecase.AuthUsecase
	QRCode service.QRCodeService
	Logger *slog.Logger
}

func run(params runParams) {
	go func() {
		code := execute(context.Background(), params)
		if err := params.Shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
			params.Logger.Error("Failed to shut down", slog.Any("error", err))
		}
	}()
}

func execute(ctx context.Context, params runParams) int {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()

		return 1
	}

	switch args[0] {
	case "send":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: beacon send <email> <continueURL>")

			return 1
		}

		err := params.Auth.SendSignInLink(ctx, &usecase.SendSignInLinkInput{
			Email: args[1],
			Settings: service.ActionCodeSettings{
				ContinueURL:     args[2],
				HandleCodeInApp: true,
			},
		})
		if err != nil {
			params.Logger.Error("Send sign-in link failed", slog.Any("error", err))

			return 1
		}

		fmt.Printf("sign-in link requested for %s\n", args[1])

	case "signin":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: beacon signin <email> <link>")

			return 1
		}

		output, err := params.Auth.SignInWithEmailLink(ctx, &usecase.SignInInput{
			Email:      args[1],
			SignInLink: args[2],
		})
		if err != nil {
			params.Logger.Error("Sign-in failed", slog.Any("error", err))

			return 1
		}

		session := output.Session
		fmt.Printf("signed in as %s (localId %s), token expires %s\n",
			session.User.Email, session.User.LocalID, session.ExpiresAt.Format("15:04:05"))

	case "qr":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: beacon qr <link> <out.png>")

			return 1
		}

		png, err := params.QRCode.GenerateSignInLinkQR(args[1])
		if err != nil {
			params.Logger.Error("QR rendering failed", slog.Any("error", err))

			return 1
		}

		if err := os.WriteFile(args[2], png, 0o644); err != nil {
			params.Logger.Error("Failed to write QR file", slog.Any("error", err))

			return 1
		}

		fmt.Printf("QR code written to %s\n", args[2])

	default:
		printUsage()

		return 1
	}

	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  beacon send <email> <continueURL>   request a sign-in link email
  beacon signin <email> <link>        redeem a sign-in link
  beacon qr <link> <out.png>          render a sign-in link as a QR code`)
}
