package morph

import (
	"fmt"
	"os"
	"sync"
)

// Environment variables naming the dictionaries used by the Default* helpers.
const (
	EnvAdjectivesPath = "LINGVO_ADJECTIVES"
	EnvAdverbsPath    = "LINGVO_ADVERBS"
	EnvEncoding       = "LINGVO_ENCODING"
)

var (
	defaultAdjectives     *Adjectives
	defaultAdjectivesErr  error
	defaultAdjectivesOnce sync.Once

	defaultAdverbs     *Adverbs
	defaultAdverbsErr  error
	defaultAdverbsOnce sync.Once
)

// DefaultAdjectives returns a process-wide dictionary loaded on first use from
// $LINGVO_ADJECTIVES. A load error is returned on every call.
func DefaultAdjectives() (*Adjectives, error) {
	defaultAdjectivesOnce.Do(func() {
		path := os.Getenv(EnvAdjectivesPath)
		if path == "" {
			defaultAdjectivesErr = fmt.Errorf("%s is not set", EnvAdjectivesPath)
			return
		}
		defaultAdjectives, defaultAdjectivesErr = LoadAdjectives(path, os.Getenv(EnvEncoding))
	})
	return defaultAdjectives, defaultAdjectivesErr
}

// DefaultAdverbs is DefaultAdjectives for $LINGVO_ADVERBS.
func DefaultAdverbs() (*Adverbs, error) {
	defaultAdverbsOnce.Do(func() {
		path := os.Getenv(EnvAdverbsPath)
		if path == "" {
			defaultAdverbsErr = fmt.Errorf("%s is not set", EnvAdverbsPath)
			return
		}
		defaultAdverbs, defaultAdverbsErr = LoadAdverbs(path, os.Getenv(EnvEncoding))
	})
	return defaultAdverbs, defaultAdverbsErr
}
