package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bio-console/internal/adapter"
	"github.com/MKhiriev/go-bio-console/internal/client"
	"github.com/MKhiriev/go-bio-console/internal/config"
	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: bio-client [flags] command [args] [command [args] ...]

commands:
  health | version | status | session
  enroll <face|voice> <file>
  verify <face|voice> <file>
  toggle <face|voice> <on|off>
  detect <file>

flags:
`

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	login := fs.String("login", os.Getenv("BIO_LOGIN"), "account login (env BIO_LOGIN)")
	password := fs.String("password", "", "account password (env BIO_PASSWORD)")
	verbose := fs.Bool("v", false, "verbose logging")
	showBuild := fs.Bool("build-info", false, "print build info and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if *showBuild {
		_ = printBuildInfo()
		return
	}
	if *password == "" {
		*password = os.Getenv("BIO_PASSWORD")
	}

	log := logger.NewClientLogger("go-bio-client", *verbose)

	commands, err := client.ParseCommands(fs.Args())
	if err != nil {
		fs.Usage()
		log.Fatal().Err(err).Msg("invalid command line")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	consoleAdapter, err := adapter.NewHTTPConsoleAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create console adapter")
	}

	app, err := client.NewApp(consoleAdapter, client.Credentials{Login: *login, Password: *password}, commands, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(info)
	return info
}
