package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/annie-elequin/pawgress/pkg/config"
)

// configurationWatchCmd represents the configuration watch command
var configurationWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Validate pawgress.yml every time it changes",
	Long: `Watch the configuration file and validate it whenever it is written.

With --apply, every valid revision is also sent to the running server as a
reload signal, exactly like "pawgressctl configuration apply".

Example:
  pawgressctl configuration watch
  pawgressctl configuration watch --apply`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		apply, _ := cmd.Flags().GetBool("apply")
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return watchConfiguration(cmd.OutOrStdout(), cfg.ConfigFilePath(), apply)
	},
}

func init() {
	configurationCmd.AddCommand(configurationWatchCmd)
	configurationWatchCmd.Flags().Bool("apply", false, "Signal the server after each valid change")
}

func watchConfiguration(out io.Writer, path string, apply bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file instead of writing it in place, so
	// watch the directory and filter on the name.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	fmt.Fprintf(out, "Watching %s for configuration changes\n", path)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isConfigChange(event, path) {
				continue
			}
			fmt.Fprintf(out, "[%s] %s changed\n", time.Now().Format(time.RFC3339), path)
			if err := checkConfigFile(path); err != nil {
				fmt.Fprintf(out, "Invalid configuration: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Configuration is valid")
			if apply {
				if err := applyConfiguration(false); err != nil {
					fmt.Fprintf(os.Stderr, "Error applying configuration: %v\n", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Fprintln(out, "\nShutting down...")
			return nil
		}
	}
}

func isConfigChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func checkConfigFile(path string) error {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	return cfg.Validate()
}
