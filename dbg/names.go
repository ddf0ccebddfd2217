// Package dbg turns vertex keys into readable names for debug logs.
package dbg

import (
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/stickloop/geom"
)

// Names are generated lazily and memoized for the life of the process, so
// the table only grows when debug naming is actually in use. The same key
// gets the same name within a run, but not across runs.

var (
	mu    sync.Mutex
	memo  = make(map[geom.Key]string)
	title = cases.Title(language.English)
)

func init() {
	petname.NonDeterministicMode()
}

// Name returns a readable name such as "BraveOtter" for k.
func Name(k geom.Key) string {
	mu.Lock()
	defer mu.Unlock()

	if r, ok := memo[k]; ok {
		return r
	}
	r := title.String(petname.Adjective()) + title.String(petname.Name())
	memo[k] = r

	return r
}

// Names maps Name over keys.
func Names(keys []geom.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = Name(k)
	}

	return out
}

// Reset forgets every name handed out so far.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[geom.Key]string)
}
