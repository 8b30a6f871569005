package main

import (
	"time"

	"github.com/henderiw/timenode/pkg/timenode"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/labels"
)

var values = []struct {
	name   string
	leaves [][2]string
}{
	{name: "contiguous", leaves: [][2]string{{"10:30", "11:00"}, {"10:00", "10:30"}}},
	{name: "gap", leaves: [][2]string{{"11:00", "11:30"}, {"10:00", "10:30"}}},
	{name: "overlap", leaves: [][2]string{{"10:15", "11:00"}, {"10:00", "10:30"}}},
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	day := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	clock := func(s string) time.Time {
		t, err := time.Parse("15:04", s)
		if err != nil {
			logger.Fatal("cannot parse clock time", zap.String("value", s), zap.Error(err))
		}
		return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}

	roots := make([]*timenode.TimeNode, 0, len(values))
	for _, v := range values {
		children := make([]*timenode.TimeNode, 0, len(v.leaves))
		for _, l := range v.leaves {
			children = append(children, timenode.NewLeaf(clock(l[0]), clock(l[1]),
				timenode.WithLabels(labels.Set{"scenario": v.name})))
		}
		root, err := timenode.NewComposite(children, timenode.WithLabels(labels.Set{"scenario": v.name}))
		if err != nil {
			logger.Fatal("cannot build composite", zap.String("scenario", v.name), zap.Error(err))
		}
		for i, c := range root.Children() {
			logger.Debug("child", zap.String("scenario", v.name), zap.Int("index", i), zap.Stringer("span", c.Span()))
		}
		logger.Info("composite",
			zap.String("scenario", v.name),
			zap.Stringer("span", root.Span()),
			zap.Bool("strong", root.StrongVerifyChildren()),
			zap.Bool("weak", root.WeakVerifyChildren()),
		)
		roots = append(roots, root)
	}

	if _, err := timenode.New(timenode.Composite{}); err != nil {
		logger.Info("empty composite rejected", zap.Error(err))
	}

	index := timenode.NewLeaf(day, day.Add(24*time.Hour))
	for _, r := range roots {
		index.AddLink(r)
		// second add is a no-op
		if index.AddLink(r) {
			logger.Error("duplicate link added", zap.Stringer("node", r))
		}
	}
	gaps := index.LinksBySelector(labels.SelectorFromSet(labels.Set{"scenario": "gap"}))
	logger.Info("links",
		zap.Int("total", len(index.Links())),
		zap.Int("gap", len(gaps)),
	)
}
