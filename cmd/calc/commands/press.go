package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc/keypad"
)

func pressCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "press key...",
		Short: "Replay keys through a keypad calculator",
		Long: "Press each key in order and print the display and result. Keys are\n" +
			"symbols or names like Enter, Backspace, Escape, NumpadAdd, and ±.\n" +
			"An argument that is not a key name is pressed one rune at a time.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := keypad.NewCalculator(o.evaluator())
			if err := pressAll(c, args); err != nil {
				return err
			}
			return o.report(cmd.OutOrStdout(), c)
		},
	}
	return cmd
}

func replCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive keypad session",
		Long: "Read lines of keys from stdin as for press, keeping the calculator\n" +
			"between lines. A line with an unknown key is rejected whole. Enter quit\n" +
			"or exit to stop.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			out := cmd.OutOrStdout()
			tty := false
			if f, ok := in.(*os.File); ok {
				tty = term.IsTerminal(int(f.Fd()))
			}
			prompt := func() {
				if tty {
					fmt.Fprint(out, "> ")
				}
			}
			c := keypad.NewCalculator(o.evaluator())
			scan := bufio.NewScanner(in)
			for prompt(); scan.Scan(); prompt() {
				keys := strings.Fields(scan.Text())
				if len(keys) == 1 && (keys[0] == "quit" || keys[0] == "exit") {
					return nil
				}
				if len(keys) == 0 {
					continue
				}
				if err := pressAll(c, keys); err != nil {
					fmt.Fprintln(out, "error:", err)
					continue
				}
				// Failures are already shown; the session goes on.
				o.report(out, c)
			}
			return scan.Err()
		},
	}
	return cmd
}
