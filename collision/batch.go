package collision

import (
	"context"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"go.viam.com/narrowphase/spatialmath"
	"go.viam.com/narrowphase/utils"
)

// TOIQuery is one pair of moving shapes for TimeOfImpactBatch.
type TOIQuery struct {
	Pose1  spatialmath.Pose
	Vel1   r3.Vector
	Shape1 spatialmath.Shape
	Pose2  spatialmath.Pose
	Vel2   r3.Vector
	Shape2 spatialmath.Shape
}

// TimeOfImpactBatch runs TimeOfImpact on every query in parallel, sharing the horizon, target distance and options.
// Results are in query order, with nil entries for pairs which do not come into contact. Errors from individual queries
// are combined and annotated with the query index; the results of the other queries are still returned.
// If ctx is cancelled, queries which have not started are skipped and the context error is returned.
func TimeOfImpactBatch(
	ctx context.Context,
	queries []TOIQuery,
	maxTime, targetDistance float64,
	opts *TOIOptions,
) ([]*TOI, error) {
	if opts == nil {
		opts = NewBasicTOIOptions()
	}
	results := make([]*TOI, len(queries))
	errs := make([]error, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(utils.ParallelFactor)
	for i := range queries {
		if gctx.Err() != nil {
			opts.logger().Debugw("time of impact batch cancelled", "remaining", len(queries)-i)
			break
		}
		i := i // per-iteration copy (module targets go 1.21 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			q := queries[i]
			toi, err := TimeOfImpact(q.Pose1, q.Vel1, q.Shape1, q.Pose2, q.Vel2, q.Shape2, maxTime, targetDistance, opts)
			if err != nil {
				errs[i] = errors.Wrapf(err, "query %d", i)
				return nil
			}
			results[i] = toi
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return results, multierr.Combine(append([]error{err}, errs...)...)
}
