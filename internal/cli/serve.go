package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/datastripes/pkg/display"
	"github.com/matzehuels/datastripes/pkg/pipeline"
)

const defaultAddr = "127.0.0.1:8080"

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags optionFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve [files...]",
		Short: "Serve the composite over HTTP",
		Long: `Serve the composite over HTTP.

The page at / shows the composite and a legend of its bars. Every request
re-reads the data files, so edits show up on reload. Nothing is written to
disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, args)
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), opts, addr)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts pipeline.Options, addr string) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	printStatus(statusNote, "Serving %d bars on %s", len(opts.Files), StyleLink.Render(browserURL(addr)))
	printHint("press ctrl+c to stop")

	srv := display.NewServer(newRunner(ctx), opts, logger)
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return err
	}
	fmt.Println()
	printStatus(statusOK, "Server stopped")
	return nil
}

// browserURL turns a listen address into a clickable URL.
func browserURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/"
}
