package main

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aiops-console/console"
	"github.com/aiops-console/console/helper"
	"github.com/aiops-console/console/model"
	"github.com/aiops-console/console/textview"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "console",
		Short:        "AI ops console",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			console.LoadEnv()
		},
	}
	rootCmd.AddCommand(newServeCmd(), newDumpCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	var port string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the console web server",
		Long: `Start the console web server.

Examples:
  console serve              # port from CONSOLE_PORT, default 3000
  console serve --port 8080  # custom port`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if port == "" {
				port = helper.GetEnvOrDefault("CONSOLE_PORT", "3000")
			}
			console.ConsoleServer(port)
		},
	}
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default $CONSOLE_PORT or 3000)")
	return serveCmd
}

func newDumpCmd() *cobra.Command {
	var search, sort, dir string

	dumpCmd := &cobra.Command{
		Use:   "dump <page>",
		Short: "Print a console page as a terminal table",
		Long: `Print the table of a console page, searched and sorted the same way
as in the browser.

Examples:
  console dump runs
  console dump alerts --sort severity
  console dump catalog --search pii --sort size --dir desc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{"search": {search}, "sort": {sort}, "dir": {dir}}
			return dump(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], model.NewListRequest(q))
		},
	}
	dumpCmd.Flags().StringVarP(&search, "search", "s", "", "Only rows containing this text")
	dumpCmd.Flags().StringVar(&sort, "sort", "", "Column key to sort by")
	dumpCmd.Flags().StringVar(&dir, "dir", "asc", "Sort direction (asc or desc)")
	return dumpCmd
}

// dump logs to logOut so out only carries the table.
func dump(out io.Writer, logOut io.Writer, name string, req model.ListRequest) error {
	ch, err := console.InitConsoleHandler(console.NewLogger(logOut))
	if err != nil {
		return err
	}

	page, ok := ch.Page(name)
	if !ok {
		names := []string{}
		for _, p := range ch.Pages() {
			names = append(names, p.Name())
		}
		return fmt.Errorf("unknown page %q (pages: %s)", name, strings.Join(names, ", "))
	}

	grid, err := page.Grid(req)
	if err != nil {
		return err
	}
	return textview.WriteTable(out, grid)
}
