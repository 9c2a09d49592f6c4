package main

import (
	"strings"

	"github.com/tdhuan/mapx/collections"
	"github.com/tdhuan/mapx/utils/lazy"
	"github.com/tdhuan/mapx/utils/tuple"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger := log.WithFields(log.Fields{"demo": "wordstats"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel

	text := "the quick brown fox jumps over the lazy dog while the dog sleeps"
	words := strings.Fields(text)
	logger.Info("input words ", len(words))

	// Frequency counting over a defaulting map: a miss reads as zero, so
	// the first occurrence needs no special case. Only explicit writes
	// make a word visible to Contains.
	freq := collections.WithDefault(func(string) int { return 0 })
	logger.Info("'the' counted before any write: ", freq.Contains("the"))
	for _, w := range words {
		n, _ := freq.Get(w)
		freq.Set(w, n+1)
	}
	logger.Info("distinct words ", freq.Size())
	logger.Info("'the' counted now: ", freq.Contains("the"))
	theCount, _ := freq.Get("the")
	logger.Info("freq of 'the' ", theCount)
	logger.Info("freq of unseen 'cat' ", freq.GetOrElse("cat", lazy.Of(0)),
		", still absent: ", !freq.Contains("cat"))

	// Memoize a per-word computation: the fallback runs once per word,
	// its result is stored, repeats hit the stored value.
	evaluations := 0
	vowels := collections.NewHashMap[string, int]()
	for _, w := range words {
		vowels.GetOrElseUpdate(w, lazy.Func(func() int {
			evaluations++
			return strings.Count(w, "a") + strings.Count(w, "e") +
				strings.Count(w, "i") + strings.Count(w, "o") +
				strings.Count(w, "u")
		}))
	}
	logger.Info("vowel computations ", evaluations, " for ", len(words), " words")

	// Derive new maps without touching the source.
	upper := collections.MapKeys(freq, strings.ToUpper)
	bars := collections.MapValues(freq, func(n int) string {
		return strings.Repeat("#", n)
	})
	upperThe, _ := upper.Get("THE")
	theBar, _ := bars.Get("the")
	logger.Info("freq of 'THE' in uppercased map ", upperThe)
	logger.Info("bar for 'the' ", theBar)
	logger.Info("source unchanged: ", freq.SameContent(collections.MapValues(freq, func(n int) int { return n })))

	// Ordered report: the sorted variant iterates ascending by key.
	report := collections.NewSortedMap[string, int]()
	for _, p := range freq.Entries() {
		report.Put(p)
	}
	report.Put(tuple.New("zzz-total", len(words)))
	for _, p := range report.Entries() {
		logger.Info("report ", p)
	}

	// Dedup pass over the raw words.
	seen := collections.NewHashSet(func(w string) string { return w })
	for _, w := range words {
		_ = seen.Add(w)
	}
	logger.Info("dedup ", len(words), " words -> ", seen.Size(), " unique")
}
