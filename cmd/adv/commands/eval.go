package commands

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/adv/drivers"
	"github.com/born-ml/adv/scalar"
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Record a built-in preset and run the tape drivers over it",
	Long: `eval records one of adv's built-in abs-factorable presets, then runs the
zero-order sweep and the Jacobian driver (forward or reverse sweeps, as
chosen by --jacobian) over it at the given point. Pass --abs-normal to
also compute the abs-normal decomposition.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().String("preset", "halfpipe", "preset function to record ("+presetNames()+")")
	evalCmd.Flags().String("x", "", "comma-separated point to evaluate at (defaults to all ones)")
	evalCmd.Flags().String("format", "text", "output format: text or msgpack")
	evalCmd.Flags().String("jacobian", "forward", "Jacobian sweep direction: forward or reverse")
	evalCmd.Flags().Bool("abs-normal", false, "also compute the abs-normal decomposition")
}

func presetNames() string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func runEval(cmd *cobra.Command, args []string) error {
	presetName, _ := cmd.Flags().GetString("preset")
	p, ok := presets[presetName]
	if !ok {
		return fmt.Errorf("unknown preset %q (available: %s)", presetName, presetNames())
	}

	xFlag, _ := cmd.Flags().GetString("x")
	x, err := parsePoint(xFlag, p.n)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	jacDir, _ := cmd.Flags().GetString("jacobian")
	wantAbsNormal, _ := cmd.Flags().GetBool("abs-normal")

	var dir drivers.Direction
	switch jacDir {
	case "forward":
		dir = drivers.Forward
	case "reverse":
		dir = drivers.Reverse
	default:
		return fmt.Errorf("unknown jacobian direction %q (use forward or reverse)", jacDir)
	}

	c := scalar.NewContext()
	indeps := make([]scalar.Value, p.n)
	for i := range indeps {
		indeps[i] = c.NewIndependent()
	}
	for _, dep := range p.build(c, indeps) {
		c.MarkDependent(dep)
	}
	t, err := c.Finish()
	if err != nil {
		return err
	}

	y, err := t.ZeroOrder(x)
	if err != nil {
		return err
	}
	jac, err := drivers.Jacobian(t, x, dir)
	if err != nil {
		return err
	}

	jr := &drivers.JacobianResult{M: t.NumDeps(), N: t.NumIndeps(), Values: jac}

	var anf *drivers.AbsNormalForm
	if wantAbsNormal {
		anf, err = drivers.AbsNormal(t, x)
		if err != nil {
			return err
		}
	}

	if format == "msgpack" {
		return printMsgpack(cmd, jr, anf)
	}
	return printText(cmd, presetName, x, y, jr, anf)
}

func parsePoint(flag string, n int) ([]float64, error) {
	if flag == "" {
		x := make([]float64, n)
		for i := range x {
			x[i] = 1
		}
		return x, nil
	}
	parts := strings.Split(flag, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("--x has %d value(s), preset expects %d", len(parts), n)
	}
	x := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing --x[%d]: %w", i, err)
		}
		x[i] = v
	}
	return x, nil
}

func printText(cmd *cobra.Command, name string, x, y []float64, jr *drivers.JacobianResult, anf *drivers.AbsNormalForm) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "preset: %s\n", name)
	fmt.Fprintf(out, "x: %v\n", x)
	fmt.Fprintf(out, "y: %v\n", y)
	fmt.Fprintf(out, "jacobian (%d x %d): %v\n", jr.M, jr.N, jr.Values)
	if anf != nil {
		fmt.Fprintf(out, "abs-normal: n=%d m=%d s=%d\n", anf.N, anf.M, anf.S)
		fmt.Fprintf(out, "  a=%v\n  b=%v\n  Z=%v\n  L=%v\n  J=%v\n  Y=%v\n",
			anf.A, anf.B, anf.Z, anf.L, anf.J, anf.Y)
	}
	return nil
}

func printMsgpack(cmd *cobra.Command, jr *drivers.JacobianResult, anf *drivers.AbsNormalForm) error {
	out := cmd.OutOrStdout()
	jacBytes, err := drivers.EncodeJacobian(jr)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "jacobian: %s\n", base64.StdEncoding.EncodeToString(jacBytes))

	if anf != nil {
		anfBytes, err := drivers.EncodeResult(anf)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "abs-normal: %s\n", base64.StdEncoding.EncodeToString(anfBytes))
	}
	return nil
}
