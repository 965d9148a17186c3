// Package btreetest provides property checks for btree.Tree: randomized
// insert/delete workloads that verify every invariant after every mutation.
package btreetest

import (
	"context"
	"math/rand/v2"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-btree/pkg/datastructs/btree"
	"github.com/huynhanx03/go-btree/pkg/settings"
)

// Result summarizes the workload run against one order.
type Result struct {
	Order    int
	Inserted int
	Deleted  int
	Height   int // after the insert phase
	Counter
}

type Report struct {
	Results []Result
}

// Counter is a btree.Tracer that counts structural events.
type Counter struct {
	Splits  int
	Merges  int
	Grows   int
	Shrinks int
}

var _ btree.Tracer = (*Counter)(nil)

func (c *Counter) Split(int) { c.Splits++ }

func (c *Counter) Merge(int) { c.Merges++ }

func (c *Counter) Grow(int) { c.Grows++ }

func (c *Counter) Shrink(int) { c.Shrinks++ }

// Run executes the workload once per order in cfg.Orders. Orders run
// concurrently, each on its own tree; at most cfg.Parallelism at a time when it
// is positive. The first failure cancels the remaining orders.
func Run(ctx context.Context, cfg settings.Verify, log *zap.Logger) (Report, error) {
	if err := settings.ValidateStruct(&cfg); err != nil {
		return Report{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	results := make([]Result, len(cfg.Orders))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Parallelism > 0 {
		g.SetLimit(cfg.Parallelism)
	}
	for i, order := range cfg.Orders {
		g.Go(func() error {
			res, err := RunOrder(ctx, order, cfg.Keys, cfg.Seed)
			if err != nil {
				log.Error("verification failed", zap.Int("order", order), zap.Error(err))
				return errors.Wrapf(err, "order %d", order)
			}
			log.Info("order verified",
				zap.Int("order", order),
				zap.Int("height", res.Height),
				zap.Int("splits", res.Splits),
				zap.Int("merges", res.Merges),
			)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return Report{Results: results}, nil
}

// RunOrder inserts a seeded permutation of 1..keys into a fresh tree of the
// given order, then deletes a seeded half of them. The tree is verified after
// every mutation and findability is checked after each phase.
func RunOrder(ctx context.Context, order, keys int, seed uint64) (Result, error) {
	var counter Counter
	tree, err := btree.New[int](order, btree.WithTracer(&counter))
	if err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewPCG(seed, uint64(order)))
	universe := make([]int, keys)
	for i, k := range rng.Perm(keys) {
		universe[i] = k + 1
	}
	live := make(map[int]struct{}, keys)

	for _, k := range universe {
		if err := ctx.Err(); err != nil {
			return Result{}, errors.WithStack(err)
		}
		tree.Insert(k)
		live[k] = struct{}{}
		if err := tree.Verify(); err != nil {
			return Result{}, errors.Wrapf(err, "after insert %d", k)
		}
	}
	if err := Check(tree, universe, live); err != nil {
		return Result{}, errors.Wrap(err, "after insert phase")
	}
	height := tree.Height()

	victims := append([]int(nil), universe...)
	rng.Shuffle(len(victims), func(i, j int) { victims[i], victims[j] = victims[j], victims[i] })
	victims = victims[:keys/2]
	for _, k := range victims {
		if err := ctx.Err(); err != nil {
			return Result{}, errors.WithStack(err)
		}
		tree.Delete(k)
		delete(live, k)
		if err := tree.Verify(); err != nil {
			return Result{}, errors.Wrapf(err, "after delete %d", k)
		}
	}
	if err := Check(tree, universe, live); err != nil {
		return Result{}, errors.Wrap(err, "after delete phase")
	}

	return Result{
		Order:    order,
		Inserted: len(universe),
		Deleted:  len(victims),
		Height:   height,
		Counter:  counter,
	}, nil
}

// Check verifies t and asserts that, among universe, exactly the keys in live
// are found.
func Check[K comparable](t *btree.Tree[K], universe []K, live map[K]struct{}) error {
	if err := t.Verify(); err != nil {
		return err
	}
	if t.Len() != len(live) {
		return errors.Errorf("Len() = %d, want %d", t.Len(), len(live))
	}
	for _, k := range universe {
		_, want := live[k]
		if got := t.Find(k); got != want {
			return errors.Errorf("Find(%v) = %v, want %v", k, got, want)
		}
	}
	return nil
}
