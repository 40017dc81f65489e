package cli

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/npillmayer/summa"
	"github.com/npillmayer/summa/bignum"
	"github.com/npillmayer/summa/parallel"
	"github.com/spf13/cobra"
)

func newSumCmd() *cobra.Command {
	var useBig bool
	var workers int

	cmd := &cobra.Command{
		Use:   "sum <ints|squares|cubes|fact> <a> <b>",
		Short: "Sum a function over the inclusive range [a, b]",
		Long: `Sum a function over the inclusive range [a, b]. An inverted range sums to 0.
Fixed width arithmetic (int64) wraps around on overflow, use --big for exact results.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, a, b, err := parseRange(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			var result string
			switch {
			case useBig && workers > 0:
				var v *big.Int
				v, err = parallel.Fold[int64, *big.Int](ctx, s.big, bignum.Monoid{}, a, b,
					parallel.WithWorkers(workers))
				if v != nil {
					result = v.String()
				}
			case useBig:
				result = bignum.Sum(s.big)(a, b).String()
			case workers > 0:
				var v int64
				v, err = parallel.Sum(ctx, s.fixed, a, b, parallel.WithWorkers(workers))
				result = strconv.FormatInt(v, 10)
			default:
				result = strconv.FormatInt(summa.Sum(s.fixed)(a, b), 10)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().BoolVar(&useBig, "big", false, "use arbitrary precision integers")
	cmd.Flags().IntVar(&workers, "workers", 0, "fold segments of the range concurrently with n workers")
	return cmd
}

func newFactCmd() *cobra.Command {
	var useBig bool

	cmd := &cobra.Command{
		Use:   "fact <n>",
		Short: "Calculate n!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if useBig {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), bignum.Fact(n))
				return err
			}
			f, err := summa.CheckedFact(n)
			if errors.Is(err, summa.ErrOverflow) {
				return fmt.Errorf("%w, use --big", err)
			} else if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), f)
			return err
		},
	}

	cmd.Flags().BoolVar(&useBig, "big", false, "use arbitrary precision integers")
	return cmd
}
