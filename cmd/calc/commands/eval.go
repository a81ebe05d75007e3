package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func evalCmd(o *options) *cobra.Command {
	var (
		inname   string
		nl, echo bool
	)
	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate expressions",
		Long: "Evaluate each argument as an expression. With no arguments, or with --in,\n" +
			"the input is evaluated too. Errors are printed in place of results.",
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs, err := inputs(cmd.InOrStdin(), inname, len(args) == 0, nl)
			if err != nil {
				return err
			}
			srcs = append(srcs, args...)
			ev := o.evaluator()
			out := cmd.OutOrStdout()
			failed := 0
			for _, src := range srcs {
				e, err := calc.Parse(src)
				if err != nil {
					fmt.Fprintln(out, err)
					failed++
					continue
				}
				if echo {
					fmt.Fprintf(out, "%v : ", e)
				}
				r, err := ev.Eval(e)
				if err != nil {
					fmt.Fprintln(out, err)
					failed++
					continue
				}
				o.result(out, "", r)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inname, "in", "", "input file, - for stdin (default stdin if no args given)")
	cmd.Flags().BoolVarP(&nl, "lines", "n", false, "evaluate separate input lines as separate expressions")
	cmd.Flags().BoolVar(&echo, "echo", false, "print parse trees")
	return cmd
}

// inputs reads the expressions in the input file, or in stdin if inname is -
// or if std is true and there is no input file.
func inputs(stdin io.Reader, inname string, std, lines bool) ([]string, error) {
	var in io.Reader
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	case inname == "-", std:
		in = stdin
	default:
		return nil, nil
	}
	if !lines {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) != "" {
			srcs = append(srcs, scan.Text())
		}
	}
	return srcs, scan.Err()
}
