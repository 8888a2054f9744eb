package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/orthopoly/apfloat"
	"github.com/katalvlaran/orthopoly/digest"
	"github.com/katalvlaran/orthopoly/hermite"
	"github.com/katalvlaran/orthopoly/legendre"
)

var (
	degree  uint64
	prec    uint
	xPrec   uint
	modeStr string
	base    int
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "orthopoly",
		Short: "Correctly-rounded Legendre and Hermite polynomial evaluation",
		Long: `orthopoly evaluates orthogonal polynomials over arbitrary-precision
floats. Results are correctly rounded: the printed value is exactly the
true mathematical value rounded once to the requested precision and mode,
and the ternary column reports the rounding direction.`,
		SilenceUsage: true,
	}

	legendreCmd = &cobra.Command{
		Use:   "legendre <x>",
		Short: "Evaluate the Legendre polynomial P_n(x), x in [-1, 1]",
		Args:  cobra.ExactArgs(1),
		RunE:  runLegendre,
	}

	hermiteCmd = &cobra.Command{
		Use:   "hermite <x>",
		Short: "Evaluate the physicists' Hermite polynomial H_n(x)",
		Args:  cobra.ExactArgs(1),
		RunE:  runHermite,
	}

	hashCmd = &cobra.Command{
		Use:   "hash <x>",
		Short: "Print the canonical 32-bit digest of a value",
		Args:  cobra.ExactArgs(1),
		RunE:  runHash,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.UintVar(&prec, "prec", 53, "target precision in bits (0 = input's precision)")
	pf.UintVar(&xPrec, "xprec", 256, "precision in bits at which <x> is parsed")
	pf.StringVar(&modeStr, "mode", "nearest", "rounding mode: nearest, nearest-away, zero, away, down, up")
	pf.IntVar(&base, "base", 10, "numeric base of <x> (2, 8, 10 or 16)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "trace the adaptive evaluator rounds")

	legendreCmd.Flags().Uint64VarP(&degree, "degree", "n", 0, "polynomial degree")
	hermiteCmd.Flags().Uint64VarP(&degree, "degree", "n", 0, "polynomial degree")

	rootCmd.AddCommand(legendreCmd, hermiteCmd, hashCmd)
}

// parseMode maps the CLI spelling onto a rounding mode.
func parseMode(s string) (apfloat.RoundingMode, error) {
	switch s {
	case "nearest":
		return apfloat.ToNearestEven, nil
	case "nearest-away":
		return apfloat.ToNearestAway, nil
	case "zero":
		return apfloat.ToZero, nil
	case "away":
		return apfloat.AwayFromZero, nil
	case "down":
		return apfloat.ToNegativeInf, nil
	case "up":
		return apfloat.ToPositiveInf, nil
	default:
		return 0, errors.Errorf("unknown rounding mode %q", s)
	}
}

func parseInput(arg string, mode apfloat.RoundingMode) (*apfloat.Float, error) {
	x, err := apfloat.Parse(arg, base, xPrec, mode)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q in base %d", arg, base)
	}

	return x, nil
}

func traceLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, errors.Wrap(err, "building trace logger")
	}

	return l, nil
}

func printResult(v *apfloat.Float, t apfloat.Ternary) {
	fmt.Printf("value   = %s\n", v.Text('g', -1))
	fmt.Printf("ternary = %s\n", t)
}

func runLegendre(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(modeStr)
	if err != nil {
		return err
	}
	x, err := parseInput(args[0], mode)
	if err != nil {
		return err
	}
	log, err := traceLogger()
	if err != nil {
		return err
	}

	v, t, err := legendre.Legendre(degree, x,
		legendre.WithPrecision(prec),
		legendre.WithRounding(mode),
		legendre.WithLogger(log),
	)
	if err != nil {
		return errors.Wrapf(err, "P_%d(%s)", degree, args[0])
	}
	printResult(v, t)

	return nil
}

func runHermite(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(modeStr)
	if err != nil {
		return err
	}
	x, err := parseInput(args[0], mode)
	if err != nil {
		return err
	}
	log, err := traceLogger()
	if err != nil {
		return err
	}

	v, t, err := hermite.Hermite(degree, x,
		hermite.WithPrecision(prec),
		hermite.WithRounding(mode),
		hermite.WithLogger(log),
	)
	if err != nil {
		return errors.Wrapf(err, "H_%d(%s)", degree, args[0])
	}
	printResult(v, t)

	return nil
}

func runHash(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(modeStr)
	if err != nil {
		return err
	}
	x, err := parseInput(args[0], mode)
	if err != nil {
		return err
	}

	sum, err := digest.Hash32(x)
	if err != nil {
		return errors.Wrapf(err, "hashing %q", args[0])
	}
	fmt.Printf("fnv32a = 0x%08x\n", sum)

	return nil
}
