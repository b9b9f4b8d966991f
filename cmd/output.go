package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// printJSON writes v as indented JSON
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// yesNo renders a boolean in color
func yesNo(ok bool) string {
	if ok {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}

// request runs fn while a spinner describes it on stderr. The spinner only
// shows on a terminal and never in --json mode.
func request(cmd *cobra.Command, s *settings, desc string, fn func() error) error {
	if s.json || !term.IsTerminal(int(os.Stderr.Fd())) {
		return fn()
	}
	return withSpinner(cmd.ErrOrStderr(), desc, fn)
}

func withSpinner(w io.Writer, desc string, fn func() error) error {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]"+desc+"[reset]"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	err := fn()
	close(done)
	<-stopped
	_ = bar.Finish()
	fmt.Fprint(w, "\r")
	return err
}
