// Command minicraftplus-server runs the Minicraft+ protocol server: it
// loads server.yaml, binds the listener, and drives the accept/tick loops
// until an admin "stop" command, the end of standard input, or a fatal
// signal.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"minicraftplus-server/internal/config"
	"minicraftplus-server/internal/logging"
	"minicraftplus-server/internal/server"
	"minicraftplus-server/internal/session"
	"minicraftplus-server/internal/world"
)

// ServerVersion is printed by -v/--version/--about.
const ServerVersion = "1.0.0"

func main() {
	app := cli.NewApp()
	app.Name = "minicraftplus-server"
	app.Usage = "Minicraft+ multiplayer protocol server"
	app.Version = ServerVersion
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Value: "server.yaml",
			Usage: "path to server.yaml",
		},
		cli.StringFlag{
			Name:  "listen",
			Usage: "override the listen address from server.yaml",
		},
		cli.BoolFlag{
			Name:  "about",
			Usage: "print version information and exit",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		color.Red("fatal: %v", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("about") {
		fmt.Printf("minicraftplus-server v%s\n", ServerVersion)
		return nil
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if listen := c.String("listen"); listen != "" {
		cfg.ListenAddress = listen
	}

	log := logging.New(cfg.LogLevel)
	serverLog := logging.For(log, "server")

	store := world.NewStore()
	handlers := session.NewDefaultTable()

	srv, err := server.New(cfg.ListenAddress, store, handlers, serverLog, cfg.BadPacketLimit, cfg.TickRate)
	if err != nil {
		return fmt.Errorf("binding %s: %w", cfg.ListenAddress, err)
	}

	color.Green("minicraftplus-server v%s listening on %s", ServerVersion, cfg.ListenAddress)
	srv.Start()

	commands := srv.NewDefaultCommandTable()
	done := make(chan struct{}, 2)
	stop := commands["stop"]
	commands["stop"] = func(args []string, sender server.Sender) {
		stop(args, sender)
		done <- struct{}{}
	}
	go func() {
		server.ReadAdminCommands(os.Stdin, os.Stdout, commands, logging.For(log, "admin"))
		done <- struct{}{}
	}()
	<-done

	return nil
}
