package main

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/labwc/labwc-core/config"
	"github.com/labwc/labwc-core/interactive"
	"github.com/labwc/labwc-core/rules"
	"github.com/labwc/labwc-core/server"
	"github.com/labwc/labwc-core/ssd"
)

var (
	startupCommand string
	configDir      string
	debug          bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "labwc",
		Short: "labwc",
		Long:  "A Wayland stacking compositor",
		RunE:  runCompositor,
	}

	root.Flags().StringVarP(&startupCommand, "startup", "s", "", "run a command on startup")
	root.Flags().StringVar(&configDir, "config-dir", "", "config directory; when set, the rc.xml search is skipped and no config file is read")
	root.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	return root
}

// Execute builds and runs the root command. Split from newRootCmd so
// tests can construct a command without invoking os.Exit.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("labwc exited with error")
	}
}

func runCompositor(cmd *cobra.Command, args []string) error {
	configureLogging()

	if configDir == "" {
		rcPaths := config.ConfigPaths("rc.xml")
		log.Info().Strs("candidates", rcPaths).Msg("searching for rc.xml")
		if found := config.FirstExisting(rcPaths); found != "" {
			log.Info().Str("path", found).Msg("using config file")
		} else {
			log.Info().Msg("no rc.xml found, running with built-in defaults")
		}
	}

	srv := server.New(&rules.Set{}, ssd.Theme{
		TitlebarHeight:    24,
		BorderWidth:       1,
		CornerRadius:      6,
		ResizeCornerRange: 16,
		ResizeMinArea:     8,
	})
	srv.SnapCfg = server.SnapConfig{
		Range:              1,
		TopMaximize:        true,
		ScreenEdgeStrength: 20,
		WindowEdgeStrength: 20,
		PreviewDelays: interactive.OverlayDelays{
			Inner: 500 * time.Millisecond,
			Outer: 500 * time.Millisecond,
		},
	}
	// The server root is wired here for downstream components; the
	// wlroots/backend bridge itself is an external collaborator.

	if startupCommand != "" {
		if err := runStartupCommand(startupCommand); err != nil {
			log.Error().Err(err).Str("command", startupCommand).Msg("external program failure")
		}
	}

	waitForShutdownSignal()
	return nil
}

// runStartupCommand execs the user's startup program, setting
// WAYLAND_DISPLAY/DISPLAY for it in its environment. The actual socket
// names come from the backend; since no backend is wired, the values from
// labwc's own environment are passed through unchanged.
func runStartupCommand(command string) error {
	c := exec.Command("/bin/sh", "-c", command)
	c.Env = append(os.Environ(),
		fmt.Sprintf("WAYLAND_DISPLAY=%s", os.Getenv("WAYLAND_DISPLAY")),
		fmt.Sprintf("DISPLAY=%s", os.Getenv("DISPLAY")),
	)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Start()
}

// waitForShutdownSignal blocks until SIGINT or SIGTERM, giving a clean
// exit code for the startup process lifecycle. golang.org/x/sys/unix
// supplies the signal numbers rather than the stdlib syscall package.
func waitForShutdownSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM)
	sig := <-ch
	log.Info().Str("signal", sig.String()).Msg("shutting down")
}

func configureLogging() {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
