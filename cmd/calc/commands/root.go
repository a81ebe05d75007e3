package commands

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/keypad"
)

// errFailed reports a failed evaluation whose message has already been
// printed.
var errFailed = errors.New("evaluation failed")

// options holds the persistent flags.
type options struct {
	prec   uint
	maxExp int
	verb   string
}

func (o *options) evaluator() *calc.Evaluator {
	return calc.New(calc.Prec(o.prec), calc.MaxExp(o.maxExp))
}

// result prints a value with the result verb.
func (o *options) result(w io.Writer, prefix string, r *big.Float) {
	fmt.Fprintf(w, prefix+o.verb+"\n", r)
}

// NewRoot creates the calc command tree.
func NewRoot() *cobra.Command {
	var o options
	root := &cobra.Command{
		Use:           "calc",
		Short:         "Keypad calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().UintVarP(&o.prec, "prec", "p", 64, "precision of calculations in bits")
	root.PersistentFlags().IntVar(&o.maxExp, "max-exp", 1024, "largest binary exponent of any value (0 for no bound)")
	root.PersistentFlags().StringVar(&o.verb, "fmt", "%g", "result formatting string")

	root.AddCommand(evalCmd(&o), pressCmd(&o), replCmd(&o))
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRoot().Execute()
}

// pressAll presses keys on c. A key that is not a key name is pressed rune by
// rune. If any key is unknown, nothing is pressed.
func pressAll(c *keypad.Calculator, keys []string) error {
	var cmds []keypad.Command
	for _, k := range keys {
		if cmd, ok := keypad.Key(k); ok {
			cmds = append(cmds, cmd)
			continue
		}
		for _, r := range k {
			cmd, ok := keypad.Key(string(r))
			if !ok {
				return fmt.Errorf("unknown key %q", string(r))
			}
			cmds = append(cmds, cmd)
		}
	}
	for _, cmd := range cmds {
		c.Do(cmd)
	}
	return nil
}

// report prints the calculator's display and result. It returns errFailed if
// the last evaluation failed.
func (o *options) report(w io.Writer, c *keypad.Calculator) error {
	fmt.Fprintln(w, c.Display())
	r, err := c.Result()
	if err != nil {
		fmt.Fprintln(w, "error:", err)
		return errFailed
	}
	o.result(w, "= ", r)
	return nil
}
